package render

import (
	"image/color"

	"civgen/internal/terrain"
	"civgen/internal/world"
)

var terrainPalette = [...]color.RGBA{
	terrain.Grassland: {R: 112, G: 168, B: 72, A: 255},
	terrain.Forest:    {R: 46, G: 110, B: 52, A: 255},
	terrain.Steppe:    {R: 176, G: 172, B: 96, A: 255},
	terrain.Desert:    {R: 222, G: 200, B: 132, A: 255},
	terrain.Mountains: {R: 128, G: 120, B: 112, A: 255},
	terrain.Sea:       {R: 36, G: 72, B: 148, A: 255},
}

// TerrainColor returns the map colour for a terrain kind.
func TerrainColor(k terrain.Kind) color.RGBA {
	if int(k) >= len(terrainPalette) {
		return terrainPalette[terrain.Sea]
	}
	return terrainPalette[k]
}

// fillTerrainRGBA converts tiles into RGBA pixels in buf.
func fillTerrainRGBA(buf []byte, tiles []world.Tile) {
	for i, t := range tiles {
		col := TerrainColor(t.Kind)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillBucketRGBA shades bucket values in [0, n) on a ramp from lo to hi.
// Values outside the range are clamped.
func FillBucketRGBA(buf []byte, cells []int, n int, lo, hi color.RGBA) {
	span := n - 1
	for i, c := range cells {
		if c < 0 {
			c = 0
		}
		if c > span {
			c = span
		}
		t := 0.0
		if span > 0 {
			t = float64(c) / float64(span)
		}
		base := i * 4
		buf[base+0] = lerp(lo.R, hi.R, t)
		buf[base+1] = lerp(lo.G, hi.G, t)
		buf[base+2] = lerp(lo.B, hi.B, t)
		buf[base+3] = lerp(lo.A, hi.A, t)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
