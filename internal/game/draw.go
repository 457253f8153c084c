package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
)

var (
	colBackground = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	colBorder     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	colText       = color.RGBA{R: 230, G: 232, B: 240, A: 255}
	colTextSoft   = color.RGBA{R: 150, G: 160, B: 180, A: 255}
	colFace       = color.RGBA{R: 255, G: 205, B: 148, A: 255}
	colFaceDark   = color.RGBA{R: 40, G: 28, B: 20, A: 255}
	colHair       = color.RGBA{R: 92, G: 58, B: 30, A: 255}
	colOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 110}
)

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(colBackground)

	// Slow moving gradient inside the play area, hotter during a frenzy.
	heat := 0.0
	if g.ctrl.Phase() == PhaseFrenzy {
		heat = 1
	}
	area := g.ctrl.Area()
	for y := 0.0; y < area.H; y += 2 {
		ratio := y / area.H
		r := uint8(22 + 20*math.Sin(g.time*0.5+ratio*math.Pi) + 60*heat)
		gv := uint8(20 + 15*math.Cos(g.time*0.3+ratio*math.Pi))
		b := uint8(32 + 25*math.Sin(g.time*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, float32(area.X), float32(area.Y+y), float32(area.W), 2, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
	vector.StrokeRect(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), 2, colBorder, false)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case !g.ctrl.ButtonEnabled():
		bgColor = color.RGBA{R: 55, G: 60, B: 75, A: 255} // Disabled
	case g.buttonPressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case g.buttonHovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := g.ctrl.ButtonLabel()
	textWidth := len(label) * 7 // Face7x13 is fixed width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight+10)/2
	clr := colText
	if !g.ctrl.ButtonEnabled() {
		clr = colTextSoft
	}
	text.Draw(screen, label, basicfont.Face7x13, textX, textY, clr)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Score: %d    Best: %d    Time: %ss",
		g.ctrl.Score(), g.ctrl.Best(), formatSeconds(g.ctrl.Remaining(), 2))
	text.Draw(screen, hud, basicfont.Face7x13, config.HUDTextX, config.HUDTextY+10, colText)

	// Fill bar: green when full, sliding to red as it empties.
	fill := g.ctrl.Fill()
	vector.DrawFilledRect(screen, config.FillBarX, config.FillBarY, config.FillBarWidth, config.FillBarH, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if fill > 0 {
		r, gv, b := hsvToRgb(120*fill, 0.8, 0.9)
		vector.DrawFilledRect(screen, config.FillBarX, config.FillBarY, float32(fill*config.FillBarWidth), config.FillBarH, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
	vector.StrokeRect(screen, config.FillBarX, config.FillBarY, config.FillBarWidth, config.FillBarH, 1, colBorder, false)
}

func (g *Game) drawTarget(screen *ebiten.Image) {
	r, visible, dimmed := g.ctrl.Target()
	if !visible {
		return
	}
	alpha := 1.0
	if dimmed {
		alpha = g.ctrl.tuning.Target.DimAlpha
	}
	cx, cy := r.Center()
	drawFace(screen, cx, cy, r.W/2, alpha)
}

func (g *Game) drawFrenzyTargets(screen *ebiten.Image) {
	area := g.ctrl.Area()
	now := g.ctrl.Now()
	for _, t := range g.ctrl.FrenzyTargets() {
		b := t.Bounds(area)
		cx, cy := b.Center()
		phase := float64(now-t.Born) / float64(t.Period)
		pulse := 1 + 0.12*math.Sin(2*math.Pi*phase)
		drawFace(screen, cx, cy, b.W/2*pulse, 1)
	}
}

// drawFace renders the target: a round face with hair, eyes and a grin.
func drawFace(screen *ebiten.Image, cx, cy, radius, alpha float64) {
	x, y, rad := float32(cx), float32(cy), float32(radius)
	vector.DrawFilledCircle(screen, x, y-rad*0.15, rad, fade(colHair, alpha), true)
	vector.DrawFilledCircle(screen, x, y+rad*0.05, rad*0.9, fade(colFace, alpha), true)

	eye := rad * 0.12
	vector.DrawFilledCircle(screen, x-rad*0.32, y-rad*0.05, eye, fade(colFaceDark, alpha), true)
	vector.DrawFilledCircle(screen, x+rad*0.32, y-rad*0.05, eye, fade(colFaceDark, alpha), true)

	mouth := fade(colFaceDark, alpha)
	for i := 0; i < 8; i++ {
		a0 := math.Pi * (0.15 + 0.7*float64(i)/8)
		a1 := math.Pi * (0.15 + 0.7*float64(i+1)/8)
		mr := float64(rad) * 0.45
		vector.StrokeLine(screen,
			x+float32(math.Cos(a0)*mr), y+rad*0.2+float32(math.Sin(a0)*mr*0.6),
			x+float32(math.Cos(a1)*mr), y+rad*0.2+float32(math.Sin(a1)*mr*0.6),
			rad*0.07, mouth, true)
	}
}

func (g *Game) drawFrenzyOverlay(screen *ebiten.Image) {
	area := g.ctrl.Area()
	bandH := 90.0
	bandY := area.Y + area.H - bandH
	vector.DrawFilledRect(screen, float32(area.X), float32(bandY), float32(area.W), float32(bandH), colOverlay, false)

	label := "FRENZY! " + formatSeconds(g.ctrl.FrenzyRemaining(), 1)
	text.Draw(screen, label, basicfont.Face7x13, int(area.X)+16, int(bandY)+22, colText)

	// Live waveform of what the speaker is playing.
	samples := g.tones.Waveform(config.WaveformSamples)
	if len(samples) < 2 {
		return
	}
	midY := bandY + bandH/2 + 10
	amp := bandH / 2.5
	step := area.W / float64(len(samples)-1)
	for i := 1; i < len(samples); i++ {
		hue := (g.colorPhase + float64(i)/float64(len(samples))) * 360
		r, gv, b := hsvToRgb(hue, 0.8, 0.9)
		v0 := (samples[i-1][0] + samples[i-1][1]) * 0.5
		v1 := (samples[i][0] + samples[i][1]) * 0.5
		vector.StrokeLine(screen,
			float32(area.X+float64(i-1)*step), float32(midY-v0*amp),
			float32(area.X+float64(i)*step), float32(midY-v1*amp),
			1.5, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch g.ctrl.Phase() {
	case PhaseIdle:
		status = "Press Start, then click the face before the bar runs out"
	case PhaseRunning:
		status = "Click the face! Missing costs time"
	case PhaseFrenzy:
		status = "Frenzy - click as many faces as you can"
	case PhaseGameOver:
		status = fmt.Sprintf("Out of time with %d points - Try Again", g.ctrl.Score())
	}
	ebitenutil.DebugPrintAt(screen, status+" | Esc/Q: Quit", config.PlayAreaX, config.WindowHeight-18)
}
