package game

import (
	"testing"
	"time"
)

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	var fired []time.Duration
	task := s.Every(50*time.Millisecond, func() { fired = append(fired, s.Now()) })

	s.Advance(49 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("expected nothing before the first interval, got %v", fired)
	}
	s.Advance(111 * time.Millisecond) // now 160ms
	want := []time.Duration{50 * time.Millisecond, 100 * time.Millisecond, 150 * time.Millisecond}
	if len(fired) != len(want) {
		t.Fatalf("expected %d ticks, got %v", len(want), fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("tick %d: expected at %v, got %v", i, want[i], fired[i])
		}
	}

	task.Cancel()
	task.Cancel()
	s.Advance(time.Second)
	if len(fired) != 3 {
		t.Errorf("expected no ticks after cancel, got %d", len(fired))
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerAfter(t *testing.T) {
	s := NewScheduler()
	count := 0
	task := s.After(100*time.Millisecond, func() { count++ })
	if !task.Active() {
		t.Fatal("expected task active before it runs")
	}

	s.Advance(100 * time.Millisecond)
	s.Advance(time.Second)
	if count != 1 {
		t.Fatalf("expected one run, got %d", count)
	}
	if task.Active() {
		t.Error("expected one-shot task inactive after running")
	}
}

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every(100*time.Millisecond, func() { order = append(order, "tick") })
	s.After(100*time.Millisecond, func() { order = append(order, "once") })
	s.After(50*time.Millisecond, func() { order = append(order, "early") })

	s.Advance(100 * time.Millisecond)
	want := []string{"early", "tick", "once"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestSchedulerCallbackCancelsOther(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	ticker := s.Every(10*time.Millisecond, func() { ticks++ })
	s.After(35*time.Millisecond, func() { ticker.Cancel() })

	s.Advance(time.Second)
	if ticks != 3 {
		t.Errorf("expected 3 ticks before cancellation, got %d", ticks)
	}
}

func TestSchedulerCallbackSchedules(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.After(10*time.Millisecond, func() {
		s.After(10*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(25 * time.Millisecond)
	if len(at) != 1 || at[0] != 20*time.Millisecond {
		t.Errorf("expected nested task at 20ms, got %v", at)
	}
	if s.Now() != 25*time.Millisecond {
		t.Errorf("expected clock at 25ms, got %v", s.Now())
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Every(time.Millisecond, func() { ran = true })
	s.After(time.Millisecond, func() { ran = true })
	s.CancelAll()
	s.Advance(time.Second)
	if ran {
		t.Error("expected nothing to run after CancelAll")
	}

	var nilTask *Task
	nilTask.Cancel()
	if nilTask.Active() {
		t.Error("nil task should never be active")
	}
}
