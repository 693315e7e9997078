package worldgen

import (
	"container/heap"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"civgen/internal/civ"
	"civgen/internal/core"
	"civgen/internal/terrain"
	"civgen/internal/world"
)

// ErrPlacementExhausted reports that a spawn search hit its attempt cap.
var ErrPlacementExhausted = errors.New("worldgen: no viable spawn location")

// TileGrid is the read-only terrain view the planner needs.
type TileGrid interface {
	Size() core.Size
	TerrainAt(x, y int) (terrain.Kind, bool)
}

// Placement pairs a planned state with its capital location.
type Placement struct {
	State *world.State
	At    core.Point
}

// Planner picks non-overlapping capital locations. One Planner serves a
// single generation attempt; its occupancy grid only ever grows.
type Planner struct {
	grid     TileGrid
	rng      *core.RNG
	minDist  int
	attempts int
	civs     []*civ.Civilization
	occupied *core.BoolGrid
	logger   *log.Logger
}

// NewPlanner returns a planner over grid drawing randomness from rng.
func NewPlanner(grid TileGrid, rng *core.RNG, p Params, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	attempts := p.SpawnAttempts
	if attempts <= 0 {
		attempts = DefaultConfig().Params.SpawnAttempts
	}
	minDist := p.MinSpawnDistance
	if minDist < 0 {
		minDist = 0
	}
	return &Planner{
		grid:     grid,
		rng:      rng,
		minDist:  minDist,
		attempts: attempts,
		civs:     civ.All(),
		logger:   logger,
	}
}

// Occupied exposes the exclusion grid, allocating it on first use.
func (p *Planner) Occupied() *core.BoolGrid {
	if p.occupied == nil {
		size := p.grid.Size()
		p.occupied = core.NewBoolGrid(size.W, size.H)
	}
	return p.occupied
}

// FindSpawn searches for an unoccupied, habitable tile by uniform random
// sampling and claims an exclusion zone around it. ok is false once the
// attempt cap is exhausted.
func (p *Planner) FindSpawn() (core.Point, bool) {
	occupied := p.Occupied()
	size := p.grid.Size()
	for i := 0; i < p.attempts; i++ {
		x := p.rng.IntN(size.W)
		y := p.rng.IntN(size.H)
		if occupied.Get(x, y) {
			continue
		}
		kind, ok := p.grid.TerrainAt(x, y)
		if !ok || !kind.Habitable() {
			continue
		}
		p.logger.Printf("spawning on %s at (%d, %d)", kind, x, y)
		marked := p.FloodFill(x, y)
		// A zero spawn distance marks nothing; the capital tile is still taken.
		occupied.Set(x, y, true)
		p.logger.Printf("flood filled %d tiles", marked)
		return core.Point{X: x, Y: y}, true
	}
	p.logger.Printf("find spawn timeout after %d attempts", p.attempts)
	return core.Point{}, false
}

// FloodFill marks land tiles within the spawn distance of (x, y) as occupied
// and returns how many were newly marked. The fill never crosses water.
func (p *Planner) FloodFill(x, y int) int {
	occupied := p.Occupied()
	f := &frontier{{x: x, y: y, budget: p.minDist + 1}}
	heap.Init(f)

	marked := 0
	for f.Len() > 0 {
		top := heap.Pop(f).(frontierEntry)
		distance := top.budget - 1
		kind, ok := p.grid.TerrainAt(top.x, top.y)
		if !ok || occupied.Get(top.x, top.y) || distance == 0 || !kind.IsLand() {
			continue
		}
		occupied.Set(top.x, top.y, true)
		marked++
		if distance == 1 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				heap.Push(f, frontierEntry{x: top.x + dx, y: top.y + dy, budget: distance})
			}
		}
	}
	return marked
}

// PlanStates creates n states and finds a capital for each. The batch is all
// or nothing: on any failure no placements are returned.
func (p *Planner) PlanStates(n int) ([]Placement, error) {
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		c := p.civs[p.rng.IntN(len(p.civs))]
		state := world.NewState(fmt.Sprintf("AI%d", i), c, p.randomColor())
		at, ok := p.FindSpawn()
		if !ok {
			return nil, fmt.Errorf("%w: state %d of %d", ErrPlacementExhausted, i+1, n)
		}
		out = append(out, Placement{State: state, At: at})
	}
	return out, nil
}

func (p *Planner) randomColor() color.RGBA {
	return color.RGBA{R: p.rng.Uint8(), G: p.rng.Uint8(), B: p.rng.Uint8(), A: 255}
}

type frontierEntry struct {
	x, y   int
	budget int
}

// frontier is a max-heap on remaining budget.
type frontier []frontierEntry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].budget > f[j].budget }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(frontierEntry)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
