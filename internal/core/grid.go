package core

// BoolGrid stores a 2D grid of flags in row-major order.
type BoolGrid struct {
	Size
	data []bool
}

// NewBoolGrid allocates an all-false grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{Size: Size{W: w, H: h}, data: make([]bool, w*h)}
}

// Cells exposes the backing slice.
func (g *BoolGrid) Cells() []bool { return g.data }

// Get returns the flag at (x, y). Out-of-bounds cells read as false.
func (g *BoolGrid) Get(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.data[g.Index(x, y)]
}

// Set marks (x, y) when it is inside the grid.
func (g *BoolGrid) Set(x, y int, v bool) {
	if !g.Contains(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Count returns the number of set cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear resets every cell to false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// IntGrid stores small integer fields such as elevation buckets.
type IntGrid struct {
	Size
	data []int
}

// NewIntGrid allocates a zeroed grid with the given dimensions.
func NewIntGrid(w, h int) *IntGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &IntGrid{Size: Size{W: w, H: h}, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// At returns the value at (x, y).
func (g *IntGrid) At(x, y int) int { return g.data[g.Index(x, y)] }
