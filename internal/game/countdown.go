package game

import "time"

// Countdown ticks remaining time down at a fixed granularity and reports
// expiry once. It is either stopped or ticking.
type Countdown struct {
	sched     *Scheduler
	tick      time.Duration
	remaining time.Duration
	task      *Task
	onExpired func()
}

func NewCountdown(sched *Scheduler, tick time.Duration, onExpired func()) *Countdown {
	return &Countdown{sched: sched, tick: tick, onExpired: onExpired}
}

// Start cancels any running countdown and begins a fresh one from d.
func (c *Countdown) Start(d time.Duration) {
	c.Stop()
	c.remaining = d
	c.task = c.sched.Every(c.tick, c.onTick)
}

// Stop cancels ticking. Remaining time is left as it was.
func (c *Countdown) Stop() {
	c.task.Cancel()
	c.task = nil
}

func (c *Countdown) Ticking() bool { return c.task.Active() }

func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Penalize takes d off the remaining time, clamped at zero. Hitting zero
// expires the countdown right away rather than waiting for the next tick.
func (c *Countdown) Penalize(d time.Duration) {
	if !c.Ticking() {
		return
	}
	c.remaining = max(c.remaining-d, 0)
	if c.remaining == 0 {
		c.expire()
	}
}

func (c *Countdown) onTick() {
	c.remaining -= c.tick
	if c.remaining <= 0 {
		c.expire()
	}
}

func (c *Countdown) expire() {
	c.remaining = 0
	c.Stop()
	if c.onExpired != nil {
		c.onExpired()
	}
}
