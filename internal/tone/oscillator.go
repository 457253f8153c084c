package tone

import (
	"fmt"
	"math"

	"github.com/faiface/beep"
)

type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "sawtooth":
		return Sawtooth, nil
	}
	return Sine, fmt.Errorf("unknown waveform %q", s)
}

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// at returns the waveform value at phase p in [0, 1).
func (w Waveform) at(p float64) float64 {
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// oscillator is an endless periodic beep.Streamer. Once stopped it reports
// drained so the mixer drops it.
type oscillator struct {
	wave    Waveform
	freq    float64
	phase   float64
	rate    beep.SampleRate
	stopped bool
}

func newOscillator(wave Waveform, freq float64, rate beep.SampleRate) *oscillator {
	return &oscillator{wave: wave, freq: freq, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.stopped {
		return 0, false
	}
	step := o.freq / float64(o.rate)
	for i := range samples {
		v := o.wave.at(o.phase)
		samples[i][0], samples[i][1] = v, v
		o.phase += step
		if o.phase >= 1 {
			o.phase -= math.Floor(o.phase)
		}
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
