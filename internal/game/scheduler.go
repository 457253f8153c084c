package game

import "time"

// Task is a handle to a scheduled callback.
type Task struct {
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	canceled bool
}

// Cancel prevents any further runs. Safe to call more than once and on a nil
// handle.
func (t *Task) Cancel() {
	if t != nil {
		t.canceled = true
	}
}

// Active reports whether the task may still run.
func (t *Task) Active() bool { return t != nil && !t.canceled }

// Scheduler runs callbacks against a virtual clock that only moves when
// Advance is called. Everything happens on the caller's goroutine, so
// callbacks may freely touch game state and schedule or cancel tasks.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

func NewScheduler() *Scheduler { return &Scheduler{} }

// Now is the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return s.now }

// After runs fn once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	return s.add(delay, 0, fn)
}

// Every runs fn each interval, first one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("game: Scheduler.Every needs a positive interval")
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{due: s.now + delay, interval: interval, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt, running every task that falls due in
// order of due time. Tasks due at the same instant run in the order they were
// scheduled. A periodic task that falls behind runs once per missed interval.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.canceled = true
		}
		next.fn()
	}
	s.now = target
	s.prune()
}

func (s *Scheduler) nextDue(limit time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.canceled || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) prune() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pending is the number of tasks that may still run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// CancelAll cancels every outstanding task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.prune()
}
