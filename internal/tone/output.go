package tone

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output is the audio device the engine plays into. Lock/Unlock guard any
// streamer state shared with the device's playback goroutine; Play and Clear
// take the lock themselves and must not be called while holding it.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Speaker plays through the system audio device.
type Speaker struct{}

func (Speaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (Speaker) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (Speaker) Clear()                  { speaker.Clear() }
func (Speaker) Lock()                   { speaker.Lock() }
func (Speaker) Unlock()                 { speaker.Unlock() }

// Silent accepts everything and plays nothing. Used for -mute and as the
// fallback when the audio device cannot be opened.
type Silent struct{}

func (Silent) Init(beep.SampleRate, int) error { return nil }
func (Silent) Play(...beep.Streamer)           {}
func (Silent) Clear()                          {}
func (Silent) Lock()                           {}
func (Silent) Unlock()                         {}
