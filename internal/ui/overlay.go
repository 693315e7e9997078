//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"civgen/internal/core"
	"civgen/internal/render"
	"civgen/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldsProvider interface {
	Fields() *worldgen.Fields
	Config() worldgen.Config
}

// Overlay draws the generator's bucket fields on top of the map.
type Overlay struct {
	source   fieldsProvider
	scale    int
	showElev bool
	showPrec bool

	elevationImg *ebiten.Image
	elevationBuf []byte
	precipImg    *ebiten.Image
	precipBuf    []byte
	stale        bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source fieldsProvider, scale int) *Overlay {
	return &Overlay{source: source, scale: scale, stale: true}
}

// Invalidate forces the cached images to be rebuilt on the next Draw.
func (o *Overlay) Invalidate() { o.stale = true }

// Update toggles layers: 1 elevation, 2 precipitation.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPrec = !o.showPrec
	}
}

// Draw renders the enabled layers through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam *render.Camera) {
	if !o.showElev && !o.showPrec {
		return
	}
	fields := o.source.Fields()
	if fields == nil {
		return
	}
	if o.stale {
		params := o.source.Config().Params
		o.buildElevation(fields.Elevation, params.MaxElevation)
		o.buildPrecipitation(fields.Precipitation, params.MaxPrecipitation)
		o.stale = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cam.Scale), float64(cam.Scale))
	op.GeoM.Translate(-cam.X, -cam.Y)
	if o.showElev && o.elevationImg != nil {
		screen.DrawImage(o.elevationImg, op)
	}
	if o.showPrec && o.precipImg != nil {
		screen.DrawImage(o.precipImg, op)
	}
}

func (o *Overlay) buildPrecipitation(field *core.IntGrid, buckets int) {
	size := field.Size
	total := size.Area()
	if total == 0 {
		return
	}
	if o.precipImg == nil || o.precipImg.Bounds().Dx() != size.W || o.precipImg.Bounds().Dy() != size.H {
		o.precipImg = ebiten.NewImage(size.W, size.H)
	}
	if len(o.precipBuf) != 4*total {
		o.precipBuf = make([]byte, 4*total)
	}
	render.FillBucketRGBA(o.precipBuf, field.Cells(), buckets,
		color.RGBA{R: 64, G: 164, B: 223, A: 0},
		color.RGBA{R: 64, G: 164, B: 223, A: 160})
	o.precipImg.WritePixels(o.precipBuf)
}

func (o *Overlay) buildElevation(field *core.IntGrid, buckets int) {
	size := field.Size
	total := size.Area()
	if total == 0 {
		return
	}
	if o.elevationImg == nil || o.elevationImg.Bounds().Dx() != size.W || o.elevationImg.Bounds().Dy() != size.H {
		o.elevationImg = ebiten.NewImage(size.W, size.H)
	}
	if len(o.elevationBuf) != 4*total {
		o.elevationBuf = make([]byte, 4*total)
	}
	span := float64(buckets - 1)
	if span <= 0 {
		span = 1
	}
	cells := field.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			base := idx * 4
			col := elevationColor(clamp01(float64(cells[idx]) / span))

			// Bucket edges read as contour lines.
			alpha := float64(col.A)
			if x+1 < size.W && cells[idx+1] != cells[idx] ||
				y+1 < size.H && cells[idx+size.W] != cells[idx] {
				alpha = math.Min(alpha*1.3, 255)
				col = lerpRGBA(col, color.RGBA{A: col.A}, 0.35)
			}

			o.elevationBuf[base+0] = col.R
			o.elevationBuf[base+1] = col.G
			o.elevationBuf[base+2] = col.B
			o.elevationBuf[base+3] = uint8(math.Round(alpha))
		}
	}
	o.elevationImg.WritePixels(o.elevationBuf)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
