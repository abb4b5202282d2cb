package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/games/chase"
	"github.com/vovakirdan/catfish/internal/platform/tui"
	"github.com/vovakirdan/catfish/internal/progress"
	"github.com/vovakirdan/catfish/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in this terminal.

Controls:
  WASD/Arrows - Move
  Space       - Dash (while moving)
  P           - Pause
  R           - Restart the run immediately
  Enter       - Play again (after game over)
  1/2/3       - Buy speed/lives/magnet (after game over)
  Ctrl+S      - Save a snapshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Extra life, longer combo window, ramps from zero
  normal - Starts at 30% of the ramp
  hard   - One life fewer, more dogs, starts at 70% of the ramp
  fixed  - No ramp, stays at the config's initial level

Examples:
  catfish play
  catfish play --difficulty hard
  catfish play --config ./chase.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadChaseConfig resolves tunables and applies the difficulty preset.
func loadChaseConfig() (config.ChaseConfig, error) {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyChasePreset(&cfg, preset)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadChaseConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	meta := progress.Default()
	var saver progress.Saver = progress.Discard
	var recorder tui.RunRecorder

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progression database, progress will not be saved", "err", err)
		store = nil
	}
	var writer *storage.MetaWriter
	if store != nil {
		defer store.Close()

		meta, err = store.LoadMeta(flagProfile)
		if err != nil {
			logger.Warn("progression record reset", "profile", flagProfile, "err", err)
		}
		writer = storage.NewMetaWriter(store, flagProfile, logger)
		saver = writer
		recorder = store
	}

	game := chase.NewSeeded(cfg, meta, seed, saver)
	logger.Debug("starting run", "profile", flagProfile, "seed", seed, "lives", game.Lives())

	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Profile:  flagProfile,
		Recorder: recorder,
		Logger:   logger,
	})

	if writer != nil {
		//nolint:errcheck // Flush errors are logged by the writer
		writer.Close()
	}
	return runErr
}
