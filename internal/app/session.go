package app

import (
	"io"
	"log"
	"time"

	"civgen/internal/core"
	"civgen/internal/render"
	"civgen/internal/world"
	"civgen/internal/worldgen"
)

// Session owns one generated world and the clock that advances it. It holds
// no GUI state so it can be driven headless.
type Session struct {
	World  *world.World
	Gen    *worldgen.Generator
	Chunks *render.ChunkIndex
	Clock  *core.TurnClock
	Report worldgen.Report

	selected     core.Point
	hasSelection bool
	logger       *log.Logger
}

// NewSession prepares a world sized by cfg. Call Regenerate to populate it.
func NewSession(cfg worldgen.Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}
	chunks := render.NewChunkIndex(size, render.DefaultChunkSize)
	s := &Session{
		World:  world.New(size.W, size.H, chunks),
		Gen:    worldgen.New(cfg),
		Chunks: chunks,
		Clock:  core.NewTurnClock(),
		logger: logger,
	}
	s.Gen.SetLogger(logger)
	s.World.SetHooks(world.Hooks{
		OnYear: func(w *world.World) {
			s.logger.Printf("year %d: %d cities", w.Turn()/365, len(w.Cities()))
		},
	})
	return s
}

// Regenerate rebuilds terrain and states from the generator's current config.
func (s *Session) Regenerate() error {
	s.Chunks.Clear()
	s.hasSelection = false
	rep, err := s.Gen.Generate(s.World)
	s.Report = rep
	if err != nil {
		return err
	}
	s.logger.Printf("generated world in %d attempt(s), %d land tiles, %d states",
		rep.Attempts, rep.LandTiles, len(s.World.States()))
	return nil
}

// Reseed switches the session seed and regenerates.
func (s *Session) Reseed(seed int64) error {
	s.Gen.SetSeed(seed)
	return s.Regenerate()
}

// Advance runs the turns due after elapsed wall-clock time.
func (s *Session) Advance(elapsed time.Duration) int {
	turns := s.Clock.Advance(elapsed)
	for i := 0; i < turns; i++ {
		s.World.TakeTurn()
	}
	return turns
}

// Select marks tile (x, y) for inspection. Out-of-bounds picks clear the
// selection.
func (s *Session) Select(x, y int) bool {
	if !s.World.InBounds(x, y) {
		s.hasSelection = false
		return false
	}
	s.selected = core.Point{X: x, Y: y}
	s.hasSelection = true
	return true
}

// Selection returns the selected tile, if any.
func (s *Session) Selection() (core.Point, bool) {
	return s.selected, s.hasSelection
}
