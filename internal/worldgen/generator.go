// Package worldgen builds terrain from layered noise and places the opening
// states on it.
package worldgen

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"civgen/internal/core"
	"civgen/internal/noise"
	"civgen/internal/terrain"
	"civgen/internal/world"
)

// ErrGenerationExhausted reports that every regeneration attempt failed to
// place all states.
var ErrGenerationExhausted = errors.New("worldgen: generation attempts exhausted")

// Fields holds the per-cell buckets and terrain produced by one build.
type Fields struct {
	Elevation     *core.IntGrid
	Precipitation *core.IntGrid
	Terrain       []terrain.Kind
}

// TerrainBuilder produces terrain for a grid from an attempt seed.
type TerrainBuilder interface {
	Build(size core.Size, seed float64) (*Fields, error)
}

// Report summarises a successful or failed Generate call.
type Report struct {
	Attempts    int
	AttemptSeed float64
	LandTiles   int
	Capitals    []core.Point
}

// Generator drives terrain builds and state placement for a World.
type Generator struct {
	cfg     Config
	table   *terrain.Table
	builder TerrainBuilder
	logger  *log.Logger
	fields  *Fields
}

// New constructs a generator using the noise terrain builder.
func New(cfg Config) *Generator {
	g := &Generator{
		cfg:    cfg,
		table:  terrain.DefaultTable(),
		logger: log.New(io.Discard, "", 0),
	}
	g.builder = NoiseTerrain{Params: &g.cfg.Params, Table: g.table}
	return g
}

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// SetSeed changes the session seed used by the next Generate.
func (g *Generator) SetSeed(seed int64) { g.cfg.Seed = seed }

// SetLogger routes progress messages to l. A nil logger discards them.
func (g *Generator) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
}

// SetTerrainBuilder replaces the terrain source.
func (g *Generator) SetTerrainBuilder(b TerrainBuilder) {
	if b == nil {
		b = NoiseTerrain{Params: &g.cfg.Params, Table: g.table}
	}
	g.builder = b
}

// Fields returns the buckets from the most recent build, or nil.
func (g *Generator) Fields() *Fields { return g.fields }

// Generate rebuilds w from the configured seed. Terrain is regenerated from a
// fresh attempt seed whenever the states cannot all be placed, up to
// MaxAttempts times. States and capitals are committed only on success; on
// failure w is left empty.
func (g *Generator) Generate(w *world.World) (Report, error) {
	var rep Report
	if w == nil {
		return rep, errors.New("worldgen: nil world")
	}
	size := core.Size{W: g.cfg.Width, H: g.cfg.Height}
	if w.Size() != size {
		return rep, fmt.Errorf("worldgen: world is %dx%d, config wants %dx%d", w.Width(), w.Height(), size.W, size.H)
	}

	maxAttempts := g.cfg.Params.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	rng := core.NewRNG(g.cfg.Seed)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rep.Attempts = attempt
		rep.AttemptSeed = rng.Float64()
		w.Reset()

		fields, err := g.builder.Build(size, rep.AttemptSeed)
		if err != nil {
			w.Reset()
			return rep, fmt.Errorf("worldgen: attempt %d: %w", attempt, err)
		}
		g.fields = fields
		if !w.SetTiles(fields.Terrain) {
			w.Reset()
			return rep, fmt.Errorf("worldgen: builder returned %d tiles for %d cells", len(fields.Terrain), size.Area())
		}
		rep.LandTiles = countLand(fields.Terrain)

		planner := NewPlanner(w, rng, g.cfg.Params, g.logger)
		placements, err := planner.PlanStates(g.cfg.Params.NumStates)
		if err != nil {
			lastErr = err
			g.logger.Printf("attempt %d (seed %.6f): %v; regenerating", attempt, rep.AttemptSeed, err)
			continue
		}

		rep.Capitals = rep.Capitals[:0]
		for _, p := range placements {
			w.AddState(p.State)
			w.CreateCity(p.At.X, p.At.Y, p.State)
			rep.Capitals = append(rep.Capitals, p.At)
		}
		return rep, nil
	}
	w.Reset()
	return rep, fmt.Errorf("%w after %d attempts: %w", ErrGenerationExhausted, maxAttempts, lastErr)
}

func countLand(kinds []terrain.Kind) int {
	n := 0
	for _, k := range kinds {
		if k.IsLand() {
			n++
		}
	}
	return n
}

// NoiseTerrain builds terrain from two OpenSimplex domains: one for the
// continent mask and elevation, one for precipitation.
type NoiseTerrain struct {
	Params *Params
	Table  *terrain.Table
}

// Build samples every cell and classifies it. A bucket the table cannot
// resolve aborts the build.
func (n NoiseTerrain) Build(size core.Size, seed float64) (*Fields, error) {
	p := n.Params
	table := n.Table
	if table == nil {
		table = terrain.DefaultTable()
	}
	elevSeed, precSeed := noise.DomainSeeds(seed)
	elevNoise := noise.New(elevSeed)
	precNoise := noise.New(precSeed)

	out := &Fields{
		Elevation:     core.NewIntGrid(size.W, size.H),
		Precipitation: core.NewIntGrid(size.W, size.H),
		Terrain:       make([]terrain.Kind, size.Area()),
	}
	freq := math.Exp2(float64(p.Scale))
	elev := out.Elevation.Cells()
	prec := out.Precipitation.Cells()
	for i := range out.Terrain {
		pt := size.Point(i)
		x, y := float64(pt.X), float64(pt.Y)

		e := 0.0
		if continent(elevNoise, x, y, freq, p.SeaLevel) {
			e = elevation(elevNoise, x, y, freq, p.Roughness) * p.Steepness
		}
		r := precipitation(precNoise, x, y, freq) * p.Humidity

		elev[i] = bucket(e, p.MaxElevation)
		prec[i] = bucket(r, p.MaxPrecipitation)
		kind, err := table.Classify(elev[i], prec[i])
		if err != nil {
			return nil, fmt.Errorf("cell (%d, %d): %w", pt.X, pt.Y, err)
		}
		out.Terrain[i] = kind
	}
	return out, nil
}

func continent(f *noise.Field, x, y, freq, seaLevel float64) bool {
	c := f.Sample(x/freq/8, y/freq/8) +
		0.5*f.Sample(x/freq/4, y/freq/4) +
		0.25*f.Sample(x/freq/2, y/freq/2)
	return seaLevel+c/1.75 > 0
}

func elevation(f *noise.Field, x, y, freq, roughness float64) float64 {
	octaves := [...]struct{ weight, scale float64 }{
		{1, 1 / (4 * freq)},
		{1, roughness / freq},
		{0.5, 2 * roughness / freq},
		{0.25, 4 * roughness / freq},
	}
	sum, total := 0.0, 0.0
	for _, o := range octaves {
		sum += o.weight * math.Max(f.Sample(x*o.scale, y*o.scale), 0)
		total += o.weight
	}
	return sum / total
}

func precipitation(f *noise.Field, x, y, freq float64) float64 {
	v := 3*math.Max(f.Sample(x/freq, y/freq), 0) +
		2*math.Max(f.Sample(2*x/freq, 2*y/freq), 0)
	return v / 5
}

// bucket scales v in [0, 1) to [0, n) and clamps.
func bucket(v float64, n int) int {
	if n <= 0 {
		return 0
	}
	b := int(math.Floor(v * float64(n)))
	if b < 0 {
		return 0
	}
	if b > n-1 {
		return n - 1
	}
	return b
}
