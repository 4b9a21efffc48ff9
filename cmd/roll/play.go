package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-roll/internal/config"
	"github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll"
	"github.com/vovakirdan/tui-roll/internal/platform/tui"
	"github.com/vovakirdan/tui-roll/internal/storage"
)

var (
	flagPractice bool
	flagFeel     string
)

var playCmd = &cobra.Command{
	Use:   "play [stage]",
	Short: "Play a stage",
	Long: `Start playing. Without a stage ID the stage picker opens.

Controls:
  Mouse drag - Roll a tile one cell
  R          - Restart stage
  N / P      - Next / previous stage
  Space      - Pause
  Esc        - Back to the stage picker
  Ctrl+S     - Screenshot to ~/.roll/screenshots
  Q/Ctrl+C   - Quit

Feel presets:
  loose  - Tiles snap after a short drag
  normal - Thresholds from roll.yaml
  strict - Tiles need a long, deliberate drag

Examples:
  roll play
  roll play 03
  roll play 03 --practice
  roll play --feel loose
  roll play --config ./my-roll.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Stay on the chosen stage after clearing it")
	playCmd.Flags().StringVar(&flagFeel, "feel", "", "Drag feel preset: loose, normal, strict")
}

func runPlay(_ *cobra.Command, args []string) {
	opts, err := loadGameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so games log to a file.
	logger, closeLog := openGameLog()
	defer closeLog()
	opts.Logger = logger
	roll.Configure(opts)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if len(args) == 1 {
		stageID := args[0]
		if err := checkStage(opts.StageDir, stageID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'roll stages' to see available stages.")
			os.Exit(1)
		}

		gameID := tui.GameCampaign
		if flagPractice {
			gameID = tui.GamePractice
		}
		back, err := playGame(tui.MenuResult{StageID: stageID, GameID: gameID}, opts, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		if !back {
			return
		}
	}

	runMenuLoop(store, cfg, opts)
}

// runMenuLoop alternates between the stage picker, the records screen and
// games until the player quits.
func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig, opts roll.Options) {
	for {
		menuResult, err := tui.RunMenu(store, cfg, opts.StageDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsRecords {
			goBack, recErr := tui.RunRecords(store, opts.StageDir, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if goBack {
				continue
			}
			return
		}

		back, err := playGame(menuResult, opts, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return
		}
	}
}

// playGame creates the game for a selection and runs it.
func playGame(sel tui.MenuResult, opts roll.Options, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := tui.NewGame(sel, opts)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg, opts.Logger)
}

// loadGameOptions loads roll.yaml and applies the command line overrides.
func loadGameOptions() (roll.Options, error) {
	cfg, err := config.LoadRoll(flagConfig)
	if err != nil {
		return roll.Options{}, err
	}

	preset, err := config.ParseFeelPreset(flagFeel)
	if err != nil {
		return roll.Options{}, err
	}
	config.ApplyFeelPreset(&cfg, preset)

	dir := flagStages
	if dir == "" {
		dir = cfg.Stages.Dir
	}
	return roll.Options{
		Config:     cfg,
		StageDir:   dir,
		StartStage: cfg.Stages.Start,
	}, nil
}

// checkStage returns an error if no stage has the given ID.
func checkStage(dir, id string) error {
	infos, err := roll.ListStages(dir)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(infos, func(s roll.StageInfo) bool { return s.ID == id }) {
		return fmt.Errorf("unknown stage %q", id)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openGameLog opens ~/.roll/roll.log for appending.
// Logging is dropped if the file cannot be opened.
func openGameLog() (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".roll")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "roll.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.GetLevel(),
	})
	return logger, func() { f.Close() }
}
