//go:build ebiten

package app

import (
	"image/color"
	"time"

	"civgen/internal/render"
	"civgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth   = 260
	viewWidth  = 960
	viewHeight = 720
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.WorldPainter
	camera  *render.Camera
	hud     *ui.HUD
	overlay *ui.Overlay

	background color.Color

	lastUpdate time.Time
	dragging   bool
	dragX      int
	dragY      int
	needUpload bool
	status     string
}

// New constructs a Game around a generated session.
func New(s *Session, scale int) *Game {
	size := s.World.Size()
	g := &Game{
		session:    s,
		painter:    render.NewWorldPainter(size.W, size.H, s.Chunks),
		camera:     render.NewCamera(scale),
		hud:        ui.NewHUD(s.Gen, hudWidth),
		background: color.RGBA{R: 8, G: 10, B: 16, A: 255},
		needUpload: true,
	}
	g.overlay = ui.NewOverlay(s.Gen, scale)
	return g
}

// Regenerate rebuilds the world and schedules a terrain upload.
func (g *Game) Regenerate() {
	g.status = ""
	if err := g.session.Regenerate(); err != nil {
		g.status = err.Error()
	}
	g.needUpload = true
	g.overlay.Invalidate()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	clock := g.session.Clock
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		clock.SetPaused(!clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		clock.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		clock.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Gen.SetSeed(now.UnixNano())
		g.Regenerate()
	}

	g.updateCamera()
	g.overlay.Update()
	g.hud.Update(viewWidth)
	sel, ok := g.session.Selection()
	g.hud.SetInfo(
		ui.TileInfo(g.session.World, sel, ok),
		ui.DebugInfo(g.session.World, clock, g.session.Report, g.status),
	)

	g.session.Advance(elapsed)
	return nil
}

func (g *Game) updateCamera() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	g.camera.Move(dx, dy)

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.dragging = true
		g.dragX, g.dragY = mx, my
	}
	if g.dragging {
		g.camera.Drag(mx-g.dragX, my-g.dragY)
		g.dragX, g.dragY = mx, my
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.dragging = false
		}
	}
	size := g.session.World.Size()
	g.camera.Clamp(size.W, size.H, viewWidth, viewHeight)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < viewWidth {
		x, y := g.camera.ScreenToTile(mx, my)
		g.session.Select(x, y)
	}
}

// Draw renders the world, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.needUpload {
		g.painter.Upload(g.session.World.Tiles())
		g.needUpload = false
	}
	g.painter.Draw(screen, g.camera)
	g.overlay.Draw(screen, g.camera)
	g.hud.Draw(screen, viewWidth, viewHeight)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth + hudWidth, viewHeight
}

// WindowSize reports the preferred window dimensions.
func (g *Game) WindowSize() (int, int) { return viewWidth + hudWidth, viewHeight }
