package tone

// sequencer steps an oscillator's frequency through a note list, one note per
// stepLen samples. It counts samples inside the audio stream, so the melody
// stays in time with the output rather than with the render loop. The first
// step keeps the oscillator's initial frequency.
type sequencer struct {
	osc     *oscillator
	notes   []float64
	stepLen int
	pos     int
	step    int
	stopped bool
}

func newSequencer(osc *oscillator, notes []float64, stepLen int) *sequencer {
	if stepLen < 1 {
		stepLen = 1
	}
	return &sequencer{osc: osc, notes: notes, stepLen: stepLen}
}

func (s *sequencer) Stream(samples [][2]float64) (int, bool) {
	if s.stopped {
		return 0, false
	}
	total := 0
	for len(samples) > 0 {
		n := s.stepLen - s.pos
		if n > len(samples) {
			n = len(samples)
		}
		sn, ok := s.osc.Stream(samples[:n])
		total += sn
		if !ok {
			return total, false
		}
		s.pos += n
		if s.pos == s.stepLen {
			s.pos = 0
			s.osc.freq = s.notes[s.step%len(s.notes)]
			s.step++
		}
		samples = samples[n:]
	}
	return total, true
}

func (s *sequencer) Err() error { return nil }
