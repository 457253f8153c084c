// Package tone synthesizes the game's background music and frenzy alert with
// beep oscillators mixed into a single master bus.
package tone

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
	"github.com/iburimskiy/frenzy-reflex/internal/logx"
)

type music struct {
	bass   *voice
	lead   *voice
	melody *sequencer
}

// Engine owns every audio resource of a session. The output device and master
// bus are created on first use and kept until Close.
//
// Engine methods must be called from one goroutine (the game loop); state
// shared with the playback goroutine is only touched under Output.Lock.
type Engine struct {
	out    Output
	tuning config.AudioTuning
	rate   beep.SampleRate

	ready  bool
	mixer  *beep.Mixer
	master *effects.Gain
	tap    *outputTap

	music *music
	alert *voice
}

func NewEngine(out Output, tuning config.AudioTuning) *Engine {
	if out == nil {
		out = Silent{}
	}
	return &Engine{
		out:    out,
		tuning: tuning,
		rate:   beep.SampleRate(tuning.SampleRate),
	}
}

func (e *Engine) ensureContext() {
	if e.ready {
		return
	}
	bufferSize := e.rate.N(e.tuning.Buffer())
	if err := e.out.Init(e.rate, bufferSize); err != nil {
		logx.Warnf("[ToneEngine] audio device unavailable, continuing muted: %v", err)
		e.out = Silent{}
	}

	e.mixer = &beep.Mixer{}
	e.master = &effects.Gain{Streamer: e.mixer, Gain: e.tuning.MasterGain - 1}
	e.tap = newOutputTap(e.master, config.TapRingSize)
	e.out.Play(e.tap)
	e.ready = true
	logx.Debugf("[ToneEngine] output ready at %d Hz, buffer %d samples", e.rate, bufferSize)
}

func (e *Engine) newVoice(vt config.VoiceTuning) *voice {
	wave, err := ParseWaveform(vt.Waveform)
	if err != nil {
		logx.Warnf("[ToneEngine] %v, using sine", err)
	}
	return newVoice(newOscillator(wave, vt.Frequency, e.rate), vt.Gain)
}

// StartMusic starts the bass drone and the stepped lead melody. Calling it
// while music is playing does nothing.
func (e *Engine) StartMusic() {
	if e.music != nil {
		return
	}
	e.ensureContext()

	bass := e.newVoice(e.tuning.Bass)
	lead := e.newVoice(e.tuning.Lead)
	melody := newSequencer(lead.osc, e.tuning.Melody, e.rate.N(e.tuning.MelodyStep()))
	lead.gain.Streamer = melody

	e.out.Lock()
	e.mixer.Add(bass.streamer(), lead.streamer())
	e.out.Unlock()

	e.music = &music{bass: bass, lead: lead, melody: melody}
	logx.Infof("[ToneEngine] music started")
}

// StopMusic halts both music oscillators and the melody sequencer.
func (e *Engine) StopMusic() {
	if e.music == nil {
		return
	}
	e.out.Lock()
	e.music.melody.stopped = true
	e.music.bass.stop()
	e.music.lead.stop()
	e.out.Unlock()

	e.music = nil
	logx.Infof("[ToneEngine] music stopped")
}

// StartAlert starts the frenzy alert tone. At most one alert plays at a time.
func (e *Engine) StartAlert() {
	e.ensureContext()
	if e.alert != nil {
		return
	}
	alert := e.newVoice(e.tuning.Alert)

	e.out.Lock()
	e.mixer.Add(alert.streamer())
	e.out.Unlock()

	e.alert = alert
	logx.Debugf("[ToneEngine] alert started")
}

// StopAlert silences the alert gain and then stops its oscillator.
func (e *Engine) StopAlert() {
	if e.alert == nil {
		return
	}
	e.out.Lock()
	e.alert.setLevel(0)
	e.alert.stop()
	e.out.Unlock()

	e.alert = nil
	logx.Debugf("[ToneEngine] alert stopped")
}

func (e *Engine) MusicPlaying() bool { return e.music != nil }
func (e *Engine) AlertPlaying() bool { return e.alert != nil }

// Waveform returns up to n of the most recently played samples, oldest first.
// It is empty until the first sound has been started.
func (e *Engine) Waveform(n int) [][2]float64 {
	if e.tap == nil {
		return nil
	}
	return e.tap.snapshot(n)
}

// Close stops every voice and clears the output.
func (e *Engine) Close() {
	e.StopMusic()
	e.StopAlert()
	// Clear takes the output lock itself.
	if e.ready {
		e.out.Clear()
	}
}
