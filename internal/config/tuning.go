package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Tuning holds every gameplay and audio constant the game reads at runtime.
type Tuning struct {
	Countdown CountdownTuning `yaml:"countdown"`
	Target    TargetTuning    `yaml:"target"`
	Frenzy    FrenzyTuning    `yaml:"frenzy"`
	Audio     AudioTuning     `yaml:"audio"`
}

type CountdownTuning struct {
	InitialMs     int `yaml:"initialMs"`     // base duration at the start of a round
	FloorMs       int `yaml:"floorMs"`       // base duration never shrinks below this
	StepMs        int `yaml:"stepMs"`        // shrink applied on every normal hit
	TickMs        int `yaml:"tickMs"`        // countdown granularity
	MissPenaltyMs int `yaml:"missPenaltyMs"` // time lost on a background click
}

type TargetTuning struct {
	Size     float64 `yaml:"size"`
	Padding  float64 `yaml:"padding"`
	DimAlpha float64 `yaml:"dimAlpha"`
}

type FrenzyTuning struct {
	Every         int     `yaml:"every"`
	Targets       int     `yaml:"targets"`
	DurationMs    int     `yaml:"durationMs"`
	DisplayTickMs int     `yaml:"displayTickMs"`
	MinSize       float64 `yaml:"minSize"`
	MaxSize       float64 `yaml:"maxSize"`
	MinPeriodMs   int     `yaml:"minPeriodMs"`
	MaxPeriodMs   int     `yaml:"maxPeriodMs"`
	PositionMin   float64 `yaml:"positionMin"`
	PositionSpan  float64 `yaml:"positionSpan"`
}

// VoiceTuning describes one oscillator and its gain stage.
type VoiceTuning struct {
	Waveform  string  `yaml:"waveform"`
	Frequency float64 `yaml:"frequency"`
	Gain      float64 `yaml:"gain"`
}

type AudioTuning struct {
	SampleRate   int         `yaml:"sampleRate"`
	BufferMs     int         `yaml:"bufferMs"`
	MasterGain   float64     `yaml:"masterGain"`
	Bass         VoiceTuning `yaml:"bass"`
	Lead         VoiceTuning `yaml:"lead"`
	Melody       []float64   `yaml:"melody"`
	MelodyStepMs int         `yaml:"melodyStepMs"`
	Alert        VoiceTuning `yaml:"alert"`
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (c CountdownTuning) Initial() time.Duration     { return ms(c.InitialMs) }
func (c CountdownTuning) Floor() time.Duration       { return ms(c.FloorMs) }
func (c CountdownTuning) Step() time.Duration        { return ms(c.StepMs) }
func (c CountdownTuning) Tick() time.Duration        { return ms(c.TickMs) }
func (c CountdownTuning) MissPenalty() time.Duration { return ms(c.MissPenaltyMs) }

func (f FrenzyTuning) Duration() time.Duration    { return ms(f.DurationMs) }
func (f FrenzyTuning) DisplayTick() time.Duration { return ms(f.DisplayTickMs) }
func (f FrenzyTuning) MinPeriod() time.Duration   { return ms(f.MinPeriodMs) }
func (f FrenzyTuning) MaxPeriod() time.Duration   { return ms(f.MaxPeriodMs) }

func (a AudioTuning) Buffer() time.Duration     { return ms(a.BufferMs) }
func (a AudioTuning) MelodyStep() time.Duration { return ms(a.MelodyStepMs) }

// DefaultTuning returns the tuning compiled into the binary.
func DefaultTuning() *Tuning {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		panic(fmt.Sprintf("embedded tuning.yaml is invalid: %v", err))
	}
	return &t
}

// LoadTuning reads a YAML file and overlays it on the defaults, so the file only
// needs the keys it changes. An empty path returns the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML from %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate checks ranges the game logic relies on.
func (t *Tuning) Validate() error {
	c := t.Countdown
	if c.TickMs <= 0 {
		return fmt.Errorf("countdown.tickMs must be positive, got %d", c.TickMs)
	}
	if c.FloorMs <= 0 || c.FloorMs > c.InitialMs {
		return fmt.Errorf("countdown.floorMs must be in (0, initialMs=%d], got %d", c.InitialMs, c.FloorMs)
	}
	if c.StepMs < 0 {
		return fmt.Errorf("countdown.stepMs cannot be negative, got %d", c.StepMs)
	}
	if c.MissPenaltyMs < 0 {
		return fmt.Errorf("countdown.missPenaltyMs cannot be negative, got %d", c.MissPenaltyMs)
	}

	if t.Target.Size <= 0 {
		return fmt.Errorf("target.size must be positive, got %.1f", t.Target.Size)
	}
	if t.Target.Padding < 0 {
		return fmt.Errorf("target.padding cannot be negative, got %.1f", t.Target.Padding)
	}

	f := t.Frenzy
	if f.Every <= 0 {
		return fmt.Errorf("frenzy.every must be positive, got %d", f.Every)
	}
	if f.Targets < 0 {
		return fmt.Errorf("frenzy.targets cannot be negative, got %d", f.Targets)
	}
	if f.DurationMs <= 0 || f.DisplayTickMs <= 0 {
		return fmt.Errorf("frenzy durations must be positive, got durationMs=%d displayTickMs=%d", f.DurationMs, f.DisplayTickMs)
	}
	if f.MinSize <= 0 || f.MinSize > f.MaxSize {
		return fmt.Errorf("frenzy size range invalid: min(%.1f) max(%.1f)", f.MinSize, f.MaxSize)
	}
	if f.MinPeriodMs <= 0 || f.MinPeriodMs > f.MaxPeriodMs {
		return fmt.Errorf("frenzy period range invalid: min(%d) max(%d)", f.MinPeriodMs, f.MaxPeriodMs)
	}
	if f.PositionMin < 0 || f.PositionSpan < 0 || f.PositionMin+f.PositionSpan > 1 {
		return fmt.Errorf("frenzy position range must stay within [0,1], got min=%.2f span=%.2f", f.PositionMin, f.PositionSpan)
	}

	a := t.Audio
	if a.SampleRate <= 0 || a.BufferMs <= 0 {
		return fmt.Errorf("audio sampleRate and bufferMs must be positive, got %d and %d", a.SampleRate, a.BufferMs)
	}
	if len(a.Melody) == 0 {
		return fmt.Errorf("audio.melody needs at least one note")
	}
	if a.MelodyStepMs <= 0 {
		return fmt.Errorf("audio.melodyStepMs must be positive, got %d", a.MelodyStepMs)
	}
	for name, v := range map[string]VoiceTuning{"bass": a.Bass, "lead": a.Lead, "alert": a.Alert} {
		switch v.Waveform {
		case "sine", "square", "sawtooth":
		default:
			return fmt.Errorf("audio.%s: unknown waveform %q", name, v.Waveform)
		}
		if v.Frequency <= 0 {
			return fmt.Errorf("audio.%s: frequency must be positive, got %.1f", name, v.Frequency)
		}
		if v.Gain < 0 {
			return fmt.Errorf("audio.%s: gain cannot be negative, got %.2f", name, v.Gain)
		}
	}
	return nil
}
