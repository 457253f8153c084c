package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/frenzy-reflex/internal/config"
	"github.com/iburimskiy/frenzy-reflex/internal/game"
	"github.com/iburimskiy/frenzy-reflex/internal/logx"
	"github.com/iburimskiy/frenzy-reflex/internal/tone"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	mute := flag.Bool("mute", false, "run without opening the audio device")
	seed := flag.Uint64("seed", 0, "random seed for target placement (0 = from clock)")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error or none")
	flag.Parse()

	logx.SetLevel(logx.ParseLevel(*logLevel))

	if err := run(*configPath, *mute, *seed); err != nil {
		logx.Errorf("[Main] %v", err)
		// The dialog is best effort; headless runs still get the log line.
		_ = zenity.Error(err.Error(), zenity.Title("Frenzy Reflex"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(configPath string, mute bool, seed uint64) error {
	tuning, err := config.LoadTuning(configPath)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	var out tone.Output = tone.Speaker{}
	if mute {
		out = tone.Silent{}
	}
	tones := tone.NewEngine(out, tuning.Audio)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	g := game.New(tuning, tones, seed)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
