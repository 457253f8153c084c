package tone

import (
	"sync"

	"github.com/faiface/beep"
)

// outputTap sits between the master bus and the speaker and keeps the most
// recent samples in a ring so the renderer can draw what is being played.
type outputTap struct {
	Source beep.Streamer
	mu     sync.RWMutex
	ring   [][2]float64
	next   int
	filled bool
}

func newOutputTap(src beep.Streamer, ringSize int) *outputTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &outputTap{Source: src, ring: make([][2]float64, ringSize)}
}

func (t *outputTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for _, s := range samples[:n] {
			t.ring[t.next] = s
			t.next++
			if t.next == len(t.ring) {
				t.next = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *outputTap) Err() error { return t.Source.Err() }

// snapshot returns up to n of the latest samples, oldest first.
func (t *outputTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avail := t.next
	if t.filled {
		avail = len(t.ring)
	}
	if n > avail {
		n = avail
	}
	out := make([][2]float64, n)
	idx := t.next - n
	if idx < 0 {
		idx += len(t.ring)
	}
	for i := range out {
		out[i] = t.ring[idx]
		idx++
		if idx == len(t.ring) {
			idx = 0
		}
	}
	return out
}
