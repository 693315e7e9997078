package app

import (
	"testing"
	"time"

	"civgen/internal/worldgen"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	cfg := worldgen.DefaultConfig()
	cfg.Width, cfg.Height = 96, 96
	cfg.Params.Scale = 4
	cfg.Params.SeaLevel = 0.5
	cfg.Params.NumStates = 2
	cfg.Params.MinSpawnDistance = 5
	s := NewSession(cfg, nil)
	if err := s.Regenerate(); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	return s
}

func TestSessionRegeneratePopulatesChunks(t *testing.T) {
	s := testSession(t)
	if len(s.World.States()) != 2 {
		t.Fatalf("expected 2 states, got %d", len(s.World.States()))
	}
	total := 0
	grid := s.Chunks.Grid()
	for cy := 0; cy < grid.H; cy++ {
		for cx := 0; cx < grid.W; cx++ {
			total += len(s.Chunks.Sprites(cx, cy))
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 city sprites, got %d", total)
	}

	if err := s.Reseed(9001); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	total = 0
	for cy := 0; cy < grid.H; cy++ {
		for cx := 0; cx < grid.W; cx++ {
			total += len(s.Chunks.Sprites(cx, cy))
		}
	}
	if total != 2 {
		t.Fatalf("regeneration should replace sprites, have %d", total)
	}
}

func TestSessionAdvanceFollowsClock(t *testing.T) {
	s := testSession(t)
	if got := s.Advance(time.Second); got != 0 || s.World.Turn() != 0 {
		t.Fatal("paused clock must not advance the world")
	}
	s.Clock.SetSpeed(4)
	if got := s.Advance(260 * time.Millisecond); got != 5 {
		t.Fatalf("expected 5 turns at 50ms, got %d", got)
	}
	if s.World.Turn() != 5 {
		t.Fatalf("world turn = %d, want 5", s.World.Turn())
	}
}

func TestSessionSelection(t *testing.T) {
	s := testSession(t)
	if !s.Select(10, 20) {
		t.Fatal("in-bounds selection should succeed")
	}
	if p, ok := s.Selection(); !ok || p.X != 10 || p.Y != 20 {
		t.Fatalf("unexpected selection %v %v", p, ok)
	}
	if s.Select(-1, 0) {
		t.Fatal("out-of-bounds selection should fail")
	}
	if _, ok := s.Selection(); ok {
		t.Fatal("failed selection should clear the previous one")
	}
}
