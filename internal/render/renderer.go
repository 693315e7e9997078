//go:build ebiten

package render

import (
	"image/color"

	"civgen/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// WorldPainter draws the terrain image once per generation and layers the
// chunked sprites over it.
type WorldPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	chunks  *ChunkIndex
	pixel   *ebiten.Image
}

// NewWorldPainter allocates a painter for a w*h tile world.
func NewWorldPainter(w, h int, chunks *ChunkIndex) *WorldPainter {
	wp := &WorldPainter{w: w, h: h, buf: make([]byte, 4*w*h), chunks: chunks}
	wp.img = ebiten.NewImage(w, h)
	wp.pixel = ebiten.NewImage(1, 1)
	wp.pixel.Fill(color.White)
	return wp
}

// Upload repaints the terrain image from tiles.
func (wp *WorldPainter) Upload(tiles []world.Tile) {
	if len(tiles) != wp.w*wp.h {
		return
	}
	fillTerrainRGBA(wp.buf, tiles)
	wp.img.WritePixels(wp.buf)
}

// Draw renders the visible part of the world through cam.
func (wp *WorldPainter) Draw(dst *ebiten.Image, cam *Camera) {
	scale := float64(cam.Scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(-cam.X, -cam.Y)
	dst.DrawImage(wp.img, op)
	wp.drawSprites(dst, cam)
}

func (wp *WorldPainter) drawSprites(dst *ebiten.Image, cam *Camera) {
	if wp.chunks == nil {
		return
	}
	viewW, viewH := dst.Bounds().Dx(), dst.Bounds().Dy()
	x0, y0 := cam.ScreenToTile(0, 0)
	x1, y1 := cam.ScreenToTile(viewW, viewH)
	cx0, cy0 := wp.chunks.ChunkOf(max(x0, 0), max(y0, 0))
	cx1, cy1 := wp.chunks.ChunkOf(max(x1, 0), max(y1, 0))
	size := wp.chunks.ChunkSize()
	markSize := float64(max(cam.Scale, 3))
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			for _, s := range wp.chunks.Sprites(cx, cy) {
				tx := cx*size + s.LocalX
				ty := cy*size + s.LocalY
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(markSize, markSize)
				op.GeoM.Translate(float64(tx*cam.Scale)-cam.X, float64(ty*cam.Scale)-cam.Y)
				op.ColorScale.ScaleWithColor(s.Tint)
				dst.DrawImage(wp.pixel, op)
			}
		}
	}
}

// Size returns the dimensions of the terrain image.
func (wp *WorldPainter) Size() (int, int) { return wp.w, wp.h }
