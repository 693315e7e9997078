// Package civ defines the playable civilizations and their bonus modifiers.
package civ

// Bonus keys.
const (
	CityGrowth       = "city_growth"
	SettlementGrowth = "settlement_growth"
	GrainProduction  = "grain_production"
	FishProduction   = "fish_production"
	StoneProduction  = "stone_production"
	WoodProduction   = "wood_production"
	IronProduction   = "iron_production"
	SettlementRange  = "settlement_range"
)

// Bonus is a named multiplier applied on top of the default of 1.
type Bonus struct {
	Name        string
	Description string
	Value       float64
}

// Civilization is a faction archetype.
type Civilization struct {
	ID      string
	Name    string
	Bonuses map[string]Bonus
}

var defaultBonuses = map[string]float64{
	CityGrowth:       1,
	SettlementGrowth: 1,
	GrainProduction:  1,
	FishProduction:   1,
	StoneProduction:  1,
	WoodProduction:   1,
	IronProduction:   1,
	SettlementRange:  1,
}

var all = []*Civilization{
	{
		ID:   "chinese",
		Name: "Chinese",
		Bonuses: map[string]Bonus{
			CityGrowth: {Name: "Large cities", Description: "City populations grow 50% faster", Value: 1.5},
		},
	},
	{
		ID:   "egyptian",
		Name: "Egyptian",
		Bonuses: map[string]Bonus{
			GrainProduction: {Name: "Flood irrigation", Description: "Farms produce 50% more grain", Value: 1.5},
		},
	},
	{
		ID:   "phoenician",
		Name: "Phoenician",
		Bonuses: map[string]Bonus{
			SettlementRange: {Name: "Prolific colonies", Description: "Settlements can be placed 50% further from nearest city", Value: 1.5},
		},
	},
}

// All returns the civilization table in a stable order.
func All() []*Civilization { return all }

// ByID finds a civilization by identifier.
func ByID(id string) (*Civilization, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Modifier returns the multiplier for key, falling back to the default bonus.
// A nil civilization yields the defaults.
func (c *Civilization) Modifier(key string) float64 {
	if c != nil {
		if b, ok := c.Bonuses[key]; ok {
			return b.Value
		}
	}
	if v, ok := defaultBonuses[key]; ok {
		return v
	}
	return 1
}
