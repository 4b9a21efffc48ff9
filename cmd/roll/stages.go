package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roll/internal/config"
	"github.com/vovakirdan/tui-roll/internal/games/roll"
	"github.com/vovakirdan/tui-roll/internal/storage"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List stages with best solves",
	Long: `Shows every stage that 'roll play' would load, with the best
recorded solve of each.

Examples:
  roll stages
  roll stages --stages ./my-stages`,
	Args: cobra.NoArgs,
	Run:  runStages,
}

func runStages(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRoll(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dir := flagStages
	if dir == "" {
		dir = cfg.Stages.Dir
	}

	infos, err := roll.ListStages(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stages: %v\n", err)
		os.Exit(1)
	}

	var stats map[string]*storage.StageStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.AllStats()
		store.Close()
	}

	nameLen := len("Name")
	for _, s := range infos {
		nameLen = max(nameLen, len(s.Name))
	}

	fmt.Printf("  %-4s  %-*s  %-5s  %s\n", "ID", nameLen, "Name", "Size", "Best")
	fmt.Printf("  %-4s  %-*s  %-5s  %s\n", "--", nameLen, "----", "----", "----")
	for _, s := range infos {
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-4s  %-*s  %-5s  %s\n", s.ID, nameLen, s.Name, size, bestText(s, stats))
	}
}

func bestText(s roll.StageInfo, stats map[string]*storage.StageStats) string {
	if !s.HasGoal {
		return "free play"
	}
	st, ok := stats[s.ID]
	if !ok || st.Solves == 0 {
		return "-"
	}
	return fmt.Sprintf("%d moves in %s (%d solves)", st.BestMoves, st.BestDuration.Round(100*time.Millisecond), st.Solves)
}
