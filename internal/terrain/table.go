package terrain

import (
	"errors"
	"fmt"
)

// Table dimensions. Generator bucket scaling must agree with these.
const (
	ElevationBuckets     = 10
	PrecipitationBuckets = 3
)

// ErrBucketOutOfRange reports a bucket index outside the table. It signals
// that the generator tunables and the table have drifted apart.
var ErrBucketOutOfRange = errors.New("terrain: bucket out of range")

// Table maps [elevation][precipitation] buckets to a terrain kind.
type Table [ElevationBuckets][PrecipitationBuckets]Kind

// DefaultTable returns the standard lookup: low elevation is sea, middle
// bands graduate from desert to forest with rain, high bands are mountains.
func DefaultTable() *Table {
	return &Table{
		{Sea, Sea, Sea},
		{Sea, Sea, Sea},
		{Sea, Sea, Sea},
		{Desert, Grassland, Grassland},
		{Steppe, Grassland, Forest},
		{Steppe, Forest, Forest},
		{Mountains, Mountains, Mountains},
		{Mountains, Mountains, Mountains},
		{Mountains, Mountains, Mountains},
		{Mountains, Mountains, Mountains},
	}
}

// Classify resolves an (elevation, precipitation) bucket pair.
func (t *Table) Classify(elevation, precipitation int) (Kind, error) {
	if elevation < 0 || elevation >= len(t) {
		return Sea, fmt.Errorf("%w: elevation %d not in [0,%d)", ErrBucketOutOfRange, elevation, len(t))
	}
	if precipitation < 0 || precipitation >= len(t[elevation]) {
		return Sea, fmt.Errorf("%w: precipitation %d not in [0,%d)", ErrBucketOutOfRange, precipitation, len(t[elevation]))
	}
	return t[elevation][precipitation], nil
}
