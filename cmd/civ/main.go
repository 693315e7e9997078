//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"civgen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg, err := cfg.WorldConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "civ: ", log.LstdFlags)
	}
	session := app.NewSession(worldCfg, logger)
	if err := session.Regenerate(); err != nil {
		log.Fatalf("generate: %v", err)
	}

	game := app.New(session, cfg.Scale)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("civgen")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
