// Package world owns the finalized tile grid, the day counter and the
// faction/city registries.
package world

import (
	"civgen/internal/core"
	"civgen/internal/terrain"
)

const (
	daysPerMonth = 30
	daysPerYear  = 365
)

// Tile is a single grid cell.
type Tile struct {
	Kind terrain.Kind
}

// Terrain returns the shared terrain descriptor.
func (t Tile) Terrain() *terrain.Type { return terrain.Lookup(t.Kind) }

// Hooks are optional callbacks fired by TakeTurn on calendar boundaries.
type Hooks struct {
	OnMonth func(w *World)
	OnYear  func(w *World)
}

// World holds all in-world data.
type World struct {
	size    core.Size
	tiles   []Tile
	turn    int
	states  []*State
	cities  map[int]*City
	sprites SpriteSink
	hooks   Hooks
}

// New returns an all-sea world. A nil sink discards sprites.
func New(width, height int, sink SpriteSink) *World {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if sink == nil {
		sink = discardSprites{}
	}
	w := &World{
		size:    core.Size{W: width, H: height},
		sprites: sink,
	}
	w.Reset()
	return w
}

// Reset clears tiles, turn, states and cities.
func (w *World) Reset() {
	w.tiles = make([]Tile, w.size.Area())
	for i := range w.tiles {
		w.tiles[i] = Tile{Kind: terrain.Sea}
	}
	w.turn = 0
	w.states = nil
	w.cities = make(map[int]*City)
}

// SetHooks installs calendar callbacks.
func (w *World) SetHooks(h Hooks) { w.hooks = h }

// SetSpriteSink replaces the sprite receiver. A nil sink discards sprites.
func (w *World) SetSpriteSink(sink SpriteSink) {
	if sink == nil {
		sink = discardSprites{}
	}
	w.sprites = sink
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Width returns the map width in tiles.
func (w *World) Width() int { return w.size.W }

// Height returns the map height in tiles.
func (w *World) Height() int { return w.size.H }

// Turn returns the number of days elapsed.
func (w *World) Turn() int { return w.turn }

// PointToIndex maps (x, y) to the row-major tile index.
func (w *World) PointToIndex(x, y int) int { return w.size.Index(x, y) }

// IndexToPoint maps a tile index back to grid coordinates.
func (w *World) IndexToPoint(i int) core.Point { return w.size.Point(i) }

// InBounds reports whether (x, y) is on the map.
func (w *World) InBounds(x, y int) bool { return w.size.Contains(x, y) }

// GetTile returns the tile at (x, y). ok is false outside the map.
func (w *World) GetTile(x, y int) (Tile, bool) {
	if !w.size.Contains(x, y) {
		return Tile{}, false
	}
	return w.tiles[w.PointToIndex(x, y)], true
}

// TerrainAt returns the terrain kind at (x, y). ok is false outside the map.
func (w *World) TerrainAt(x, y int) (terrain.Kind, bool) {
	t, ok := w.GetTile(x, y)
	return t.Kind, ok
}

// Tiles exposes the tile grid in row-major order for read-only iteration.
func (w *World) Tiles() []Tile { return w.tiles }

// SetTiles replaces the terrain of every tile. kinds must hold exactly
// Width*Height entries.
func (w *World) SetTiles(kinds []terrain.Kind) bool {
	if len(kinds) != len(w.tiles) {
		return false
	}
	for i, k := range kinds {
		w.tiles[i] = Tile{Kind: k}
	}
	return true
}

// States returns every registered state.
func (w *World) States() []*State { return w.states }

// AddState registers a state.
func (w *World) AddState(s *State) { w.states = append(w.states, s) }

// CityAt returns the city on (x, y), if any.
func (w *World) CityAt(x, y int) (*City, bool) {
	if !w.size.Contains(x, y) {
		return nil, false
	}
	c, ok := w.cities[w.PointToIndex(x, y)]
	return c, ok
}

// Cities returns every city ordered by tile index.
func (w *World) Cities() []*City {
	out := make([]*City, 0, len(w.cities))
	for i := 0; i < len(w.tiles) && len(out) < len(w.cities); i++ {
		if c, ok := w.cities[i]; ok {
			out = append(out, c)
		}
	}
	return out
}

// CreateCity founds a city at (x, y) for state and hands a tinted city
// sprite to the renderer.
func (w *World) CreateCity(x, y int, state *State) *City {
	c := &City{X: x, Y: y, State: state, Population: CapitalPopulation}
	w.cities[w.PointToIndex(x, y)] = c
	if state != nil {
		state.Cities = append(state.Cities, c)
		w.sprites.AddSprite(x, y, SpriteCity, state.Color)
	} else {
		w.sprites.AddSprite(x, y, SpriteCity, neutralTint)
	}
	return c
}

// TakeTurn advances the world by one day.
func (w *World) TakeTurn() {
	w.turn++
	if w.turn%daysPerMonth == 0 {
		w.updateMonth()
	}
	if w.turn%daysPerYear == 0 {
		w.updateYear()
	}
}

func (w *World) updateMonth() {
	if w.hooks.OnMonth != nil {
		w.hooks.OnMonth(w)
	}
}

func (w *World) updateYear() {
	for _, c := range w.Cities() {
		c.growPopulation()
	}
	if w.hooks.OnYear != nil {
		w.hooks.OnYear(w)
	}
}
