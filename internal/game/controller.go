package game

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
	"github.com/iburimskiy/frenzy-reflex/internal/logx"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseFrenzy
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFrenzy:
		return "frenzy"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Sound is the part of the tone engine the controller drives.
type Sound interface {
	StartMusic()
	StopMusic()
	StartAlert()
	StopAlert()
	Close()
}

// Controller owns the whole game state and applies player actions and time to
// it. It has no rendering or input code; Game translates clicks into calls.
type Controller struct {
	tuning *config.Tuning
	sched  *Scheduler
	rng    *rand.Rand
	sound  Sound
	area   Rect

	phase     Phase
	score     Score
	base      time.Duration
	hits      int
	countdown *Countdown
	frenzy    *Frenzy

	target        Rect
	targetVisible bool
	targetDimmed  bool
}

func NewController(tuning *config.Tuning, area Rect, sound Sound, rng *rand.Rand) *Controller {
	c := &Controller{
		tuning: tuning,
		sched:  NewScheduler(),
		rng:    rng,
		sound:  sound,
		area:   area,
		base:   tuning.Countdown.Initial(),
	}
	c.countdown = NewCountdown(c.sched, tuning.Countdown.Tick(), c.expired)
	c.frenzy = NewFrenzy(c.sched, tuning.Frenzy, rng, c.endFrenzy)

	size := tuning.Target.Size
	cx, cy := area.Center()
	c.target = Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
	c.targetVisible = true
	return c
}

// Start begins a new round from Idle or GameOver.
func (c *Controller) Start() {
	if c.phase == PhaseRunning || c.phase == PhaseFrenzy {
		return
	}
	c.countdown.Stop()
	c.frenzy.Cancel()

	c.score.Reset()
	c.base = c.tuning.Countdown.Initial()
	c.hits = 0
	c.relocateTarget()
	c.targetVisible = true
	c.targetDimmed = false
	c.phase = PhaseRunning

	c.sound.StartMusic()
	c.countdown.Start(c.base)
	logx.Infof("[Controller] round started, best so far %d", c.score.Best())
}

// HitTarget credits a click on the main target.
func (c *Controller) HitTarget() {
	if c.phase != PhaseRunning {
		return
	}
	c.score.Increment()
	c.hits++
	c.base = max(c.tuning.Countdown.Floor(), c.base-c.tuning.Countdown.Step())
	logx.Debugf("[Controller] hit %d, score %d, base %v", c.hits, c.score.Current(), c.base)

	if c.score.Current()%c.tuning.Frenzy.Every == 0 {
		c.startFrenzy()
		return
	}
	c.relocateTarget()
	c.countdown.Start(c.base)
}

// HitFrenzyTarget credits a click on a frenzy target. Unknown or already
// removed ids are ignored.
func (c *Controller) HitFrenzyTarget(id int) bool {
	if c.phase != PhaseFrenzy || !c.frenzy.Hit(id) {
		return false
	}
	c.score.Increment()
	return true
}

// Miss applies the background-click penalty.
func (c *Controller) Miss() {
	if c.phase != PhaseRunning {
		return
	}
	c.countdown.Penalize(c.tuning.Countdown.MissPenalty())
}

// Advance moves game time forward by dt.
func (c *Controller) Advance(dt time.Duration) { c.sched.Advance(dt) }

// Close stops every timer and sound. The controller is unusable afterwards.
func (c *Controller) Close() {
	c.countdown.Stop()
	c.frenzy.Cancel()
	c.sched.CancelAll()
	c.sound.Close()
}

func (c *Controller) startFrenzy() {
	c.countdown.Stop()
	c.phase = PhaseFrenzy
	c.targetVisible = false
	c.frenzy.Start()
	c.sound.StartAlert()
	logx.Infof("[Controller] frenzy at score %d", c.score.Current())
}

func (c *Controller) endFrenzy() {
	c.sound.StopAlert()
	c.phase = PhaseRunning
	c.targetVisible = true
	c.relocateTarget()
	c.countdown.Start(c.base)
	logx.Infof("[Controller] frenzy over, score %d", c.score.Current())
}

func (c *Controller) expired() {
	c.phase = PhaseGameOver
	c.targetDimmed = true
	logx.Infof("[Controller] game over, score %d best %d", c.score.Current(), c.score.Best())
}

func (c *Controller) relocateTarget() {
	c.target.X, c.target.Y = RandomPosition(c.rng, c.area, c.target.W, c.target.H, c.tuning.Target.Padding)
}

func (c *Controller) Phase() Phase                   { return c.phase }
func (c *Controller) Score() int                     { return c.score.Current() }
func (c *Controller) Best() int                      { return c.score.Best() }
func (c *Controller) Hits() int                      { return c.hits }
func (c *Controller) BaseDuration() time.Duration    { return c.base }
func (c *Controller) Area() Rect                     { return c.area }
func (c *Controller) Now() time.Duration             { return c.sched.Now() }
func (c *Controller) FrenzyTargets() []FrenzyTarget  { return c.frenzy.Targets() }
func (c *Controller) FrenzyRemaining() time.Duration { return c.frenzy.Remaining() }

// Remaining is the countdown time left. Before the first round it shows a
// full bar.
func (c *Controller) Remaining() time.Duration {
	if c.phase == PhaseIdle {
		return c.base
	}
	return c.countdown.Remaining()
}

// Fill is remaining/base in [0, 1] for the timer bar.
func (c *Controller) Fill() float64 {
	if c.base <= 0 {
		return 0
	}
	return clamp01(float64(c.Remaining()) / float64(c.base))
}

// Target returns the main target's box and how it should be shown.
func (c *Controller) Target() (r Rect, visible, dimmed bool) {
	return c.target, c.targetVisible, c.targetDimmed
}

func (c *Controller) ButtonEnabled() bool {
	return c.phase == PhaseIdle || c.phase == PhaseGameOver
}

func (c *Controller) ButtonLabel() string {
	switch c.phase {
	case PhaseRunning, PhaseFrenzy:
		return "Game Running"
	case PhaseGameOver:
		return "Try Again"
	default:
		return "Start"
	}
}

// FrenzyTargetAt returns the id of the frenzy target under the point, if any.
func (c *Controller) FrenzyTargetAt(x, y float64) (int, bool) {
	return c.frenzy.TargetAt(c.area, x, y)
}
