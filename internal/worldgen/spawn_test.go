package worldgen

import (
	"testing"

	"civgen/internal/core"
	"civgen/internal/terrain"
)

type kindGrid struct {
	size  core.Size
	kinds []terrain.Kind
}

func newKindGrid(w, h int, fill func(x, y int) terrain.Kind) *kindGrid {
	g := &kindGrid{size: core.Size{W: w, H: h}, kinds: make([]terrain.Kind, w*h)}
	for i := range g.kinds {
		p := g.size.Point(i)
		g.kinds[i] = fill(p.X, p.Y)
	}
	return g
}

func (g *kindGrid) Size() core.Size { return g.size }

func (g *kindGrid) TerrainAt(x, y int) (terrain.Kind, bool) {
	if !g.size.Contains(x, y) {
		return terrain.Sea, false
	}
	return g.kinds[g.size.Index(x, y)], true
}

func chebyshev(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

func plannerParams(minDist, attempts int) Params {
	p := DefaultConfig().Params
	p.MinSpawnDistance = minDist
	p.SpawnAttempts = attempts
	return p
}

func TestFloodFillMarksChebyshevDiskOnLand(t *testing.T) {
	grid := newKindGrid(41, 41, func(int, int) terrain.Kind { return terrain.Grassland })
	planner := NewPlanner(grid, core.NewRNG(1), plannerParams(5, 10), nil)

	marked := planner.FloodFill(20, 20)
	if marked != 81 {
		t.Fatalf("expected 81 marked tiles, got %d", marked)
	}
	occupied := planner.Occupied()
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			want := chebyshev(x, y, 20, 20) < 5
			if occupied.Get(x, y) != want {
				t.Fatalf("tile (%d,%d) occupied=%v, want %v", x, y, occupied.Get(x, y), want)
			}
		}
	}
}

func TestFloodFillStopsAtWater(t *testing.T) {
	grid := newKindGrid(41, 41, func(x, _ int) terrain.Kind {
		if x == 23 {
			return terrain.Sea
		}
		return terrain.Grassland
	})
	planner := NewPlanner(grid, core.NewRNG(1), plannerParams(5, 10), nil)
	planner.FloodFill(20, 20)

	occupied := planner.Occupied()
	for y := 0; y < 41; y++ {
		for x := 23; x < 41; x++ {
			if occupied.Get(x, y) {
				t.Fatalf("tile (%d,%d) across the water should not be marked", x, y)
			}
		}
	}
	if !occupied.Get(22, 20) {
		t.Fatal("shore tile next to the origin should be marked")
	}

	before := append([]bool(nil), occupied.Cells()...)
	added := planner.FloodFill(30, 20)
	if added == 0 {
		t.Fatal("second fill on the far shore should mark tiles")
	}
	for i, v := range before {
		if v && !occupied.Cells()[i] {
			t.Fatalf("cell %d was unmarked by a later fill", i)
		}
	}
	for y := 0; y < 41; y++ {
		if occupied.Get(23, y) {
			t.Fatalf("sea tile (23,%d) must never be marked", y)
		}
	}
}

func TestFloodFillIgnoresOccupiedOrigin(t *testing.T) {
	grid := newKindGrid(9, 9, func(int, int) terrain.Kind { return terrain.Forest })
	planner := NewPlanner(grid, core.NewRNG(1), plannerParams(2, 10), nil)
	if got := planner.FloodFill(4, 4); got != 9 {
		t.Fatalf("expected 9 tiles, got %d", got)
	}
	if got := planner.FloodFill(4, 4); got != 0 {
		t.Fatalf("refilling an occupied origin should mark nothing, got %d", got)
	}
}

func TestFindSpawnRejectsMountainsAndSea(t *testing.T) {
	grid := newKindGrid(6, 6, func(x, _ int) terrain.Kind {
		if x%2 == 0 {
			return terrain.Mountains
		}
		return terrain.Sea
	})
	planner := NewPlanner(grid, core.NewRNG(3), plannerParams(2, 500), nil)
	if _, ok := planner.FindSpawn(); ok {
		t.Fatal("FindSpawn should fail without habitable land")
	}
	if planner.Occupied().Count() != 0 {
		t.Fatal("failed search must not mark tiles")
	}
}

func TestFindSpawnZeroDistanceStillClaimsTile(t *testing.T) {
	grid := newKindGrid(1, 1, func(int, int) terrain.Kind { return terrain.Steppe })
	planner := NewPlanner(grid, core.NewRNG(3), plannerParams(0, 50), nil)
	if _, ok := planner.FindSpawn(); !ok {
		t.Fatal("first spawn should succeed")
	}
	if _, ok := planner.FindSpawn(); ok {
		t.Fatal("the only tile is taken; second spawn should fail")
	}
}

func TestSpawnsNeverLandInEarlierZones(t *testing.T) {
	grid := newKindGrid(80, 80, func(x, y int) terrain.Kind {
		switch {
		case x%17 == 0 || y%13 == 0:
			return terrain.Sea
		case (x*y)%11 == 0:
			return terrain.Mountains
		default:
			return terrain.Grassland
		}
	})
	planner := NewPlanner(grid, core.NewRNG(42), plannerParams(6, 99999), nil)
	occupied := planner.Occupied()

	var capitals []core.Point
	for i := 0; i < 8; i++ {
		before := append([]bool(nil), occupied.Cells()...)
		p, ok := planner.FindSpawn()
		if !ok {
			t.Fatalf("spawn %d failed", i)
		}
		if before[grid.size.Index(p.X, p.Y)] {
			t.Fatalf("spawn %d at %v landed inside an earlier exclusion zone", i, p)
		}
		kind, _ := grid.TerrainAt(p.X, p.Y)
		if !kind.Habitable() {
			t.Fatalf("spawn %d at %v is on %s", i, p, kind)
		}
		for j, v := range before {
			if v && !occupied.Cells()[j] {
				t.Fatalf("spawn %d cleared cell %d", i, j)
			}
		}
		capitals = append(capitals, p)
	}
	for i, p := range capitals {
		if !occupied.Get(p.X, p.Y) {
			t.Fatalf("capital %d at %v must stay occupied", i, p)
		}
	}
}

func TestPlanStatesAllOrNothing(t *testing.T) {
	grid := newKindGrid(3, 3, func(x, y int) terrain.Kind {
		if x == 1 && y == 1 {
			return terrain.Grassland
		}
		return terrain.Sea
	})
	planner := NewPlanner(grid, core.NewRNG(5), plannerParams(1, 200), nil)
	placements, err := planner.PlanStates(2)
	if err == nil {
		t.Fatal("expected placement exhaustion")
	}
	if placements != nil {
		t.Fatalf("failed batch must not return placements, got %d", len(placements))
	}

	planner = NewPlanner(grid, core.NewRNG(5), plannerParams(1, 200), nil)
	placements, err = planner.PlanStates(1)
	if err != nil {
		t.Fatalf("single state should fit: %v", err)
	}
	if len(placements) != 1 || placements[0].At != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("unexpected placements %+v", placements)
	}
	state := placements[0].State
	if state.Name != "AI0" || state.Civilization == nil || state.Color.A != 255 {
		t.Fatalf("unexpected state %+v", state)
	}
}
