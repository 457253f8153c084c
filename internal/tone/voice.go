package tone

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// voice pairs an oscillator with the gain stage it feeds.
type voice struct {
	osc  *oscillator
	gain *effects.Gain
}

func newVoice(osc *oscillator, level float64) *voice {
	v := &voice{osc: osc, gain: &effects.Gain{Streamer: osc}}
	v.setLevel(level)
	return v
}

// setLevel sets a linear gain; effects.Gain multiplies by 1+Gain.
func (v *voice) setLevel(level float64) { v.gain.Gain = level - 1 }

func (v *voice) level() float64 { return v.gain.Gain + 1 }

func (v *voice) stop() { v.osc.stopped = true }

func (v *voice) streamer() beep.Streamer { return v.gain }
