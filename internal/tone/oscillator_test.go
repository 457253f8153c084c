package tone

import (
	"math"
	"testing"
)

func TestWaveformShapes(t *testing.T) {
	if v := Square.at(0.25); v != 1 {
		t.Errorf("square first half: expected 1, got %v", v)
	}
	if v := Square.at(0.75); v != -1 {
		t.Errorf("square second half: expected -1, got %v", v)
	}
	if v := Sawtooth.at(0); v != -1 {
		t.Errorf("sawtooth start: expected -1, got %v", v)
	}
	if v := Sawtooth.at(0.5); v != 0 {
		t.Errorf("sawtooth middle: expected 0, got %v", v)
	}
	if v := Sine.at(0.25); math.Abs(v-1) > 1e-12 {
		t.Errorf("sine quarter: expected 1, got %v", v)
	}
}

func TestParseWaveform(t *testing.T) {
	for _, name := range []string{"sine", "square", "sawtooth"} {
		w, err := ParseWaveform(name)
		if err != nil {
			t.Fatalf("ParseWaveform(%q): %v", name, err)
		}
		if w.String() != name {
			t.Errorf("round trip: expected %q, got %q", name, w.String())
		}
	}
	if _, err := ParseWaveform("triangle"); err == nil {
		t.Error("expected error for unknown waveform")
	}
}

func TestOscillatorPeriod(t *testing.T) {
	// 125 Hz at 1000 samples/s repeats every 8 samples.
	o := newOscillator(Sawtooth, 125, 1000)
	buf := make([][2]float64, 16)
	n, ok := o.Stream(buf)
	if n != 16 || !ok {
		t.Fatalf("expected 16 samples streamed, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < 8; i++ {
		if math.Abs(buf[i][0]-buf[i+8][0]) > 1e-9 {
			t.Fatalf("sample %d differs from one period later: %v vs %v", i, buf[i][0], buf[i+10][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("expected identical channels at %d", i)
		}
	}

	o.stopped = true
	if n, ok := o.Stream(buf); n != 0 || ok {
		t.Errorf("stopped oscillator: expected (0, false), got (%d, %v)", n, ok)
	}
}

func TestSequencerSteps(t *testing.T) {
	notes := []float64{200, 300, 400}
	o := newOscillator(Square, 100, 1000)
	s := newSequencer(o, notes, 10)

	buf := make([][2]float64, 7)
	s.Stream(buf)
	if o.freq != 100 {
		t.Fatalf("first step should keep the initial frequency, got %v", o.freq)
	}

	// Odd-sized buffers must still switch exactly on step boundaries.
	s.Stream(buf[:3])
	if o.freq != 200 {
		t.Fatalf("after one step expected 200, got %v", o.freq)
	}

	want := []float64{300, 400, 200, 300}
	for i, f := range want {
		s.Stream(make([][2]float64, 10))
		if o.freq != f {
			t.Fatalf("step %d: expected %v, got %v", i+2, f, o.freq)
		}
	}

	s.stopped = true
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("stopped sequencer: expected (0, false), got (%d, %v)", n, ok)
	}
}

func TestOutputTapSnapshot(t *testing.T) {
	o := newOscillator(Sawtooth, 1, 8) // phase advances 1/8 per sample
	tap := newOutputTap(o, 4)

	if got := tap.snapshot(4); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(got))
	}

	tap.Stream(make([][2]float64, 3))
	got := tap.snapshot(10)
	if len(got) != 3 {
		t.Fatalf("expected 3 samples before the ring fills, got %d", len(got))
	}

	tap.Stream(make([][2]float64, 3)) // six samples written, ring keeps last four
	got = tap.snapshot(4)
	want := []float64{2.0/8*2 - 1, 3.0/8*2 - 1, 4.0/8*2 - 1, 5.0/8*2 - 1}
	for i := range want {
		if math.Abs(got[i][0]-want[i]) > 1e-9 {
			t.Fatalf("sample %d: expected %v, got %v", i, want[i], got[i][0])
		}
	}
}
