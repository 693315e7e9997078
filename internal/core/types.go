package core

// Size describes the dimensions of a tile grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the row-major slice index for (x, y).
func (s Size) Index(x, y int) int { return x + y*s.W }

// Point converts a row-major index back into grid coordinates.
func (s Size) Point(i int) Point {
	if s.W <= 0 {
		return Point{}
	}
	return Point{X: i % s.W, Y: i / s.W}
}

// Area returns the number of cells in the grid.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}
