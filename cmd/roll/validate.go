package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roll/internal/config"
	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/stages"
)

var flagShow bool

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Check stage files",
	Long: `Parse and validate stage files, then load each one onto a board.
Exits with status 1 if any file is invalid.

Examples:
  roll validate ./my-stages/*.yaml
  roll validate --show stage.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagShow, "show", false, "Print the starting grid of each valid stage")
}

func runValidate(_ *cobra.Command, args []string) {
	cfg, err := config.LoadRoll(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gesture := core.GestureConfig{
		MoveThreshold: cfg.Gesture.MoveThreshold,
		SnapThreshold: cfg.Gesture.SnapThreshold,
	}

	failed := 0
	for _, path := range args {
		board, err := validateStage(path, &gesture)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		stage, _ := board.Stage()
		goal := fmt.Sprintf("%d goals", len(stage.Goal))
		if !board.HasGoal() {
			goal = "free play"
		}
		fmt.Printf("ok    %s: %s %q %dx%d, %d tiles, %s\n",
			path, stage.ID, stage.Name, stage.Width, stage.Height, board.Grid().OccupiedCount(), goal)
		if flagShow {
			fmt.Println(board.Grid().String())
			fmt.Println()
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d stage files invalid\n", failed, len(args))
		os.Exit(1)
	}
}

// validateStage loads a stage file onto a fresh board.
func validateStage(path string, gesture *core.GestureConfig) (*core.Board, error) {
	stage, err := stages.LoadPath(path)
	if err != nil {
		return nil, err
	}
	board, err := core.NewBoard(gesture, core.UnitLayout(), nil)
	if err != nil {
		return nil, err
	}
	if err := board.LoadStage(stage); err != nil {
		return nil, err
	}
	return board, nil
}
