// Package terrain holds the static terrain descriptors and the
// elevation/precipitation lookup table used to classify generated cells.
package terrain

// Kind enumerates terrain types.
type Kind uint8

const (
	Grassland Kind = iota
	Forest
	Steppe
	Desert
	Mountains
	Sea

	numKinds
)

// SheetIndex addresses a cell on a 16x16 sprite sheet.
type SheetIndex struct {
	Col, Row int
}

// Type describes a terrain kind. Descriptors are shared by every tile of that
// kind and never mutated.
type Type struct {
	Kind        Kind
	Name        string
	Description string
	Fertility   int
	IsLand      bool
	Sprite      SheetIndex
}

var types = [numKinds]Type{
	Grassland: {
		Kind:        Grassland,
		Name:        "Grassland",
		Description: "Fertile flat land covered in tall grasses",
		Fertility:   5,
		IsLand:      true,
		Sprite:      SheetIndex{0, 0},
	},
	Forest: {
		Kind:        Forest,
		Name:        "Forest",
		Description: "Fertile land covered in trees and small clearings.",
		Fertility:   3,
		IsLand:      true,
		Sprite:      SheetIndex{1, 0},
	},
	Steppe: {
		Kind:        Steppe,
		Name:        "Steppe",
		Description: "Flat land covered in short grasses unsuitable for agriculture",
		Fertility:   1,
		IsLand:      true,
		Sprite:      SheetIndex{2, 0},
	},
	Desert: {
		Kind:        Desert,
		Name:        "Desert",
		Description: "Dry infertile flat land",
		Fertility:   0,
		IsLand:      true,
		Sprite:      SheetIndex{3, 0},
	},
	Mountains: {
		Kind:        Mountains,
		Name:        "Mountains",
		Description: "Steep cliffs and small lakes make this terrain nearly impassable.",
		Fertility:   0,
		IsLand:      true,
		Sprite:      SheetIndex{4, 0},
	},
	Sea: {
		Kind:        Sea,
		Name:        "Sea",
		Description: "Rough salty waters",
		Fertility:   0,
		IsLand:      false,
		Sprite:      SheetIndex{0, 1},
	},
}

// Lookup returns the shared descriptor for k. Unknown kinds resolve to Sea.
func Lookup(k Kind) *Type {
	if k >= numKinds {
		return &types[Sea]
	}
	return &types[k]
}

// Kinds lists every terrain kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the display name.
func (k Kind) String() string { return Lookup(k).Name }

// IsLand reports whether k is land terrain.
func (k Kind) IsLand() bool { return Lookup(k).IsLand }

// Habitable reports whether a capital may be founded on k.
func (k Kind) Habitable() bool { return k.IsLand() && k != Mountains }
