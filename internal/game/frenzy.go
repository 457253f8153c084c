package game

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
)

// FrenzyTarget is one of the bonus targets spawned for a frenzy window. X and Y
// are the top-left corner as fractions of the play area.
type FrenzyTarget struct {
	ID     int
	X, Y   float64
	Size   float64
	Period time.Duration
	Born   time.Duration
}

// Bounds is the target's clickable box inside area.
func (t FrenzyTarget) Bounds(area Rect) Rect {
	return Rect{X: area.X + t.X*area.W, Y: area.Y + t.Y*area.H, W: t.Size, H: t.Size}
}

// Frenzy runs a fixed bonus window full of short-lived targets.
type Frenzy struct {
	sched  *Scheduler
	tuning config.FrenzyTuning
	rng    *rand.Rand

	targets   []FrenzyTarget
	nextID    int
	remaining time.Duration
	display   *Task
	window    *Task
	onEnd     func()
}

func NewFrenzy(sched *Scheduler, tuning config.FrenzyTuning, rng *rand.Rand, onEnd func()) *Frenzy {
	return &Frenzy{sched: sched, tuning: tuning, rng: rng, onEnd: onEnd}
}

// Start spawns a fresh batch of targets and opens the bonus window.
func (f *Frenzy) Start() {
	f.Cancel()
	f.spawn()
	f.remaining = f.tuning.Duration()
	tick := f.tuning.DisplayTick()
	f.display = f.sched.Every(tick, func() {
		f.remaining -= tick
	})
	f.window = f.sched.After(f.tuning.Duration(), f.finish)
}

func (f *Frenzy) spawn() {
	t := f.tuning
	f.targets = f.targets[:0]
	for range t.Targets {
		f.nextID++
		period := between(f.rng, float64(t.MinPeriod()), float64(t.MaxPeriod()))
		f.targets = append(f.targets, FrenzyTarget{
			ID:     f.nextID,
			X:      t.PositionMin + f.rng.Float64()*t.PositionSpan,
			Y:      t.PositionMin + f.rng.Float64()*t.PositionSpan,
			Size:   between(f.rng, t.MinSize, t.MaxSize),
			Period: time.Duration(period),
			Born:   f.sched.Now(),
		})
	}
}

func (f *Frenzy) finish() {
	f.Cancel()
	if f.onEnd != nil {
		f.onEnd()
	}
}

// Cancel closes the window without reporting its end and drops every target.
func (f *Frenzy) Cancel() {
	f.display.Cancel()
	f.window.Cancel()
	f.display, f.window = nil, nil
	f.targets = f.targets[:0]
}

func (f *Frenzy) Active() bool { return f.window.Active() }

// Hit removes the target with the given id. It reports false when no such
// target is alive, so a target can only ever be credited once.
func (f *Frenzy) Hit(id int) bool {
	if !f.Active() {
		return false
	}
	for i, t := range f.targets {
		if t.ID == id {
			f.targets = append(f.targets[:i], f.targets[i+1:]...)
			return true
		}
	}
	return false
}

// TargetAt returns the topmost live target under the point. Later targets are
// drawn on top, so the search runs backwards.
func (f *Frenzy) TargetAt(area Rect, x, y float64) (int, bool) {
	for i := len(f.targets) - 1; i >= 0; i-- {
		if f.targets[i].Bounds(area).Contains(x, y) {
			return f.targets[i].ID, true
		}
	}
	return 0, false
}

// Targets returns the live targets. The slice is only valid until the next
// frenzy call.
func (f *Frenzy) Targets() []FrenzyTarget { return f.targets }

// Remaining is the time left for display, never negative.
func (f *Frenzy) Remaining() time.Duration { return max(f.remaining, 0) }
