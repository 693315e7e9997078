package world

import (
	"image/color"
	"math"

	"civgen/internal/civ"
)

const (
	// CapitalPopulation is the founding population of a capital city.
	CapitalPopulation = 1000
	// baseYearlyGrowth is the unmodified annual population growth rate.
	baseYearlyGrowth = 0.02
)

// State is a faction: a collection of cities under one banner.
type State struct {
	Name         string
	Color        color.RGBA
	Civilization *civ.Civilization
	Cities       []*City
	Gold         int
}

// NewState constructs a State with no cities.
func NewState(name string, c *civ.Civilization, tint color.RGBA) *State {
	return &State{Name: name, Civilization: c, Color: tint}
}

// Capital returns the first city founded by the state.
func (s *State) Capital() (*City, bool) {
	if len(s.Cities) == 0 {
		return nil, false
	}
	return s.Cities[0], true
}

// City occupies a tile and holds a population.
type City struct {
	X, Y       int
	State      *State
	Population int
}

// growPopulation applies one year of growth scaled by the owner's civilization.
func (c *City) growPopulation() {
	var mod float64 = 1
	if c.State != nil {
		mod = c.State.Civilization.Modifier(civ.CityGrowth)
	}
	c.Population += int(math.Round(float64(c.Population) * baseYearlyGrowth * mod))
}
