package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"civgen/internal/app"
	"civgen/internal/terrain"
	"civgen/internal/world"
	"civgen/internal/worldgen"
)

var glyphs = map[terrain.Kind]byte{
	terrain.Grassland: '.',
	terrain.Forest:    'f',
	terrain.Steppe:    ',',
	terrain.Desert:    ':',
	terrain.Mountains: '^',
	terrain.Sea:       '~',
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	preview := flag.Int("preview", 80, "ASCII preview width in characters (0 disables)")
	flag.Parse()

	worldCfg, err := cfg.WorldConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gen := worldgen.New(worldCfg)
	if cfg.Verbose {
		gen.SetLogger(log.New(os.Stderr, "worldgen: ", log.Lmicroseconds))
	}
	w := world.New(worldCfg.Width, worldCfg.Height, nil)
	rep, err := gen.Generate(w)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("World %dx%d seed %d: %d attempt(s), attempt seed %.6f\n",
		worldCfg.Width, worldCfg.Height, worldCfg.Seed, rep.Attempts, rep.AttemptSeed)
	printTerrainSummary(w)
	fmt.Println("States:")
	for _, s := range w.States() {
		capital, _ := s.Capital()
		kind, _ := w.TerrainAt(capital.X, capital.Y)
		fmt.Printf("  %-4s %-10s capital (%d, %d) on %s, colour #%02x%02x%02x\n",
			s.Name, s.Civilization.Name, capital.X, capital.Y, kind, s.Color.R, s.Color.G, s.Color.B)
	}
	if *preview > 0 {
		fmt.Println()
		fmt.Print(renderPreview(w, *preview))
	}
}

func printTerrainSummary(w *world.World) {
	counts := make(map[terrain.Kind]int)
	for _, t := range w.Tiles() {
		counts[t.Kind]++
	}
	total := len(w.Tiles())
	fmt.Println("Terrain:")
	for _, k := range terrain.Kinds() {
		fmt.Printf("  %-10s %7d (%5.1f%%)\n", k, counts[k], 100*float64(counts[k])/float64(total))
	}
}

// renderPreview downsamples the map to cols characters wide. Capitals are
// drawn as the last digit of their state index.
func renderPreview(w *world.World, cols int) string {
	if cols > w.Width() {
		cols = w.Width()
	}
	step := w.Width() / cols
	if step < 1 {
		step = 1
	}
	// Terminal cells are roughly twice as tall as they are wide.
	rowStep := step * 2

	capitals := make(map[[2]int]byte)
	for i, s := range w.States() {
		if c, ok := s.Capital(); ok {
			capitals[[2]int{c.X / step, c.Y / rowStep}] = byte('0' + i%10)
		}
	}

	var b strings.Builder
	for y := 0; y*rowStep < w.Height(); y++ {
		for x := 0; x*step < w.Width(); x++ {
			if g, ok := capitals[[2]int{x, y}]; ok {
				b.WriteByte(g)
				continue
			}
			kind, _ := w.TerrainAt(x*step, y*rowStep)
			b.WriteByte(glyphs[kind])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
