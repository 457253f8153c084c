package game

import (
	"testing"
	"time"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
	"github.com/iburimskiy/frenzy-reflex/internal/tone"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	g := New(tuning, tone.NewEngine(tone.Silent{}, tuning.Audio), 42)
	t.Cleanup(g.Close)
	return g
}

func click(g *Game, x, y float64) {
	g.pointerDown(x, y)
	g.pointerUp(x, y)
}

// backgroundPoint finds a play-area point that hits nothing.
func backgroundPoint(t *testing.T, g *Game) (float64, float64) {
	t.Helper()
	area := g.ctrl.Area()
	target, visible, _ := g.ctrl.Target()
	for x := area.X + 1; x < area.Right(); x += 7 {
		for y := area.Y + 1; y < area.Bottom(); y += 7 {
			if visible && target.Contains(x, y) {
				continue
			}
			if _, ok := g.ctrl.FrenzyTargetAt(x, y); ok {
				continue
			}
			return x, y
		}
	}
	t.Fatal("no empty background point found")
	return 0, 0
}

func TestGameButton(t *testing.T) {
	g := newTestGame(t)
	bx, by := buttonRect.Center()

	g.pointerDown(bx, by)
	g.pointerUp(bx+500, by) // released elsewhere
	if g.ctrl.Phase() != PhaseIdle {
		t.Fatal("releasing outside the button must not start the game")
	}

	click(g, bx, by)
	if g.ctrl.Phase() != PhaseRunning {
		t.Fatalf("expected running after clicking Start, got %v", g.ctrl.Phase())
	}
	if !g.tones.MusicPlaying() {
		t.Error("expected music after start")
	}
}

func TestGameClicks(t *testing.T) {
	g := newTestGame(t)
	g.ctrl.Start()

	r, _, _ := g.ctrl.Target()
	cx, cy := r.Center()
	click(g, cx, cy)
	if g.ctrl.Score() != 1 {
		t.Fatalf("expected a target click to score, got %d", g.ctrl.Score())
	}

	x, y := backgroundPoint(t, g)
	click(g, x, y)
	if g.ctrl.Remaining() != 1925*time.Millisecond-150*time.Millisecond {
		t.Fatalf("expected miss penalty, remaining %v", g.ctrl.Remaining())
	}

	// Outside the play area (HUD strip) is neither hit nor miss.
	before := g.ctrl.Remaining()
	click(g, config.WindowWidth-5, 30)
	if g.ctrl.Remaining() != before {
		t.Error("clicks outside the play area must be ignored")
	}
}

func TestGameFrenzyClicks(t *testing.T) {
	g := newTestGame(t)
	g.ctrl.Start()
	for g.ctrl.Phase() != PhaseFrenzy {
		r, _, _ := g.ctrl.Target()
		cx, cy := r.Center()
		click(g, cx, cy)
	}
	if !g.tones.AlertPlaying() {
		t.Error("expected alert tone during frenzy")
	}

	x, y := backgroundPoint(t, g)
	click(g, x, y)
	if g.ctrl.Score() != 10 {
		t.Fatalf("background clicks must be ignored during frenzy, score %d", g.ctrl.Score())
	}

	tg := g.ctrl.FrenzyTargets()[0]
	cx, cy := tg.Bounds(g.ctrl.Area()).Center()
	click(g, cx, cy)
	if g.ctrl.Score() != 11 || len(g.ctrl.FrenzyTargets()) != 11 {
		t.Fatalf("expected one frenzy credit, score %d targets %d", g.ctrl.Score(), len(g.ctrl.FrenzyTargets()))
	}

	g.ctrl.Advance(5 * time.Second)
	if g.ctrl.Phase() != PhaseRunning || g.tones.AlertPlaying() {
		t.Fatalf("expected frenzy over and alert stopped, phase %v", g.ctrl.Phase())
	}
}
