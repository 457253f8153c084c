// Package game implements the reflex game: its rules in Controller and its
// window, input and rendering in Game.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
	"github.com/iburimskiy/frenzy-reflex/internal/tone"
)

var (
	buttonRect = Rect{X: config.ButtonX, Y: config.ButtonY, W: config.ButtonWidth, H: config.ButtonHeight}
	playArea   = Rect{X: config.PlayAreaX, Y: config.PlayAreaY, W: config.PlayAreaWidth, H: config.PlayAreaHeight}
)

// Game implements ebiten.Game on top of a Controller.
type Game struct {
	ctrl  *Controller
	tones *tone.Engine

	// button state
	buttonHovered bool
	buttonPressed bool

	// viz
	time       float64
	colorPhase float64
}

// New builds a game in the Idle phase. A zero seed picks one from the clock.
func New(tuning *config.Tuning, tones *tone.Engine, seed uint64) *Game {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Game{
		ctrl:  NewController(tuning, playArea, tones, rng),
		tones: tones,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	x, y := float64(mouseX), float64(mouseY)
	g.buttonHovered = buttonRect.Contains(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointerDown(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointerUp(x, y)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.ctrl.Advance(dt)
	g.time += dt.Seconds()
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

// pointerDown routes a press to whatever is under it. Targets react on press;
// the button waits for the release, like a regular button.
func (g *Game) pointerDown(x, y float64) {
	if buttonRect.Contains(x, y) {
		g.buttonPressed = g.ctrl.ButtonEnabled()
		return
	}

	switch g.ctrl.Phase() {
	case PhaseFrenzy:
		// Only frenzy targets count; the background is inert.
		if id, ok := g.ctrl.FrenzyTargetAt(x, y); ok {
			g.ctrl.HitFrenzyTarget(id)
		}
	case PhaseRunning:
		if !g.ctrl.Area().Contains(x, y) {
			return
		}
		if r, visible, _ := g.ctrl.Target(); visible && r.Contains(x, y) {
			g.ctrl.HitTarget()
		} else {
			g.ctrl.Miss()
		}
	}
}

func (g *Game) pointerUp(x, y float64) {
	if g.buttonPressed && buttonRect.Contains(x, y) && g.ctrl.ButtonEnabled() {
		g.ctrl.Start()
	}
	g.buttonPressed = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawButton(screen)
	g.drawHUD(screen)
	g.drawTarget(screen)
	if g.ctrl.Phase() == PhaseFrenzy {
		g.drawFrenzyTargets(screen)
		g.drawFrenzyOverlay(screen)
	}
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close releases timers and audio. Call it once the window has closed.
func (g *Game) Close() {
	g.ctrl.Close()
}
