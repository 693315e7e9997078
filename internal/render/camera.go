package render

// Camera tracks the top-left corner of the view in world pixels.
type Camera struct {
	X, Y  float64
	Scale int
	Speed float64
}

// NewCamera returns a camera at the origin with the given tile scale.
func NewCamera(scale int) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{Scale: scale, Speed: 5}
}

// Move shifts the camera by one speed step in each direction flagged.
func (c *Camera) Move(dx, dy int) {
	c.X += float64(dx) * c.Speed
	c.Y += float64(dy) * c.Speed
}

// Drag pans by a screen-space delta, as when dragging the map.
func (c *Camera) Drag(dx, dy int) {
	c.X -= float64(dx)
	c.Y -= float64(dy)
}

// Clamp keeps a view of viewW x viewH pixels inside a world of w x h tiles.
func (c *Camera) Clamp(w, h, viewW, viewH int) {
	maxX := float64(w*c.Scale - viewW)
	maxY := float64(h*c.Scale - viewH)
	c.X = clampf(c.X, 0, maxX)
	c.Y = clampf(c.Y, 0, maxY)
}

// ScreenToTile converts a screen position to tile coordinates.
func (c *Camera) ScreenToTile(sx, sy int) (int, int) {
	px := int(c.X) + sx
	py := int(c.Y) + sy
	return floorDiv(px, c.Scale), floorDiv(py, c.Scale)
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
