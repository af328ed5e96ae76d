//go:build ebiten

package app

import (
	"time"

	"procnoise/internal/field"
	"procnoise/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a noise field to the ebiten.Game interface.
type Game struct {
	fld     *field.Field
	painter *render.GridPainter

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided field.
func New(fld *field.Field, scale int, seed int64) *Game {
	size := fld.Size()
	return &Game{
		fld:     fld,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.fld.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the animated slice.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.fld.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current field slice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.fld.Cells(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.fld.Size()
	return s.W * g.scale, s.H * g.scale
}
