package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/platform/tui"
	"github.com/vovakirdan/wordsnake/internal/storage"
	"github.com/vovakirdan/wordsnake/internal/vocab"
	"github.com/vovakirdan/wordsnake/internal/wordsnake"
)

func runPlay(cmd *cobra.Command, args []string) error {
	w, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(w)

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	pairs := vocab.Load(flagVocab, logger)

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []wordsnake.Option{wordsnake.WithLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score history", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts = append(opts, wordsnake.WithRecorder(store))
	}

	game := wordsnake.New(gameCfg, pairs, opts...)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.WordSnakeConfig, error) {
	cfg, err := config.LoadWordSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, nil
}
