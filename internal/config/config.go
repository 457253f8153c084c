package config

const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Frenzy Reflex - click the target before the bar runs out, Esc/Q: Quit"

	// Start/retry button
	ButtonWidth  = 140
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 20

	// HUD: time text and fill bar sit to the right of the button
	HUDTextX     = 180
	HUDTextY     = 26
	FillBarX     = 180
	FillBarY     = 48
	FillBarWidth = WindowWidth - FillBarX - 20
	FillBarH     = 12

	// Play area below the HUD
	PlayAreaX      = 20
	PlayAreaY      = 80
	PlayAreaWidth  = WindowWidth - 40
	PlayAreaHeight = WindowHeight - PlayAreaY - 20

	// Frenzy overlay waveform
	WaveformSamples = 1024
	TapRingSize     = 8192
	ColorShiftSpeed = 0.01
)
