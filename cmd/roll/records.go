package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roll/internal/storage"
)

var (
	flagRecordsLimit int
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records <stage>",
	Short: "Show best solves for a stage",
	Long: `Display the best solves for the specified stage.
Fewer moves rank first; ties go to the faster solve.

Examples:
  roll records 01
  roll records 03 --limit 3
  roll records 03 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of solves to show")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete all solves of the stage")
}

func runRecords(_ *cobra.Command, args []string) {
	stageID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsClear {
		if err := store.ClearSolves(stageID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solves: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared solves for stage %s.\n", stageID)
		return
	}

	solves, err := store.BestSolves(stageID, flagRecordsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solves - stage %s\n", stageID)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'roll play %s' to set the first record!\n", stageID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-13s  %s\n", "Rank", "Moves", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-13s  %s\n", "----", "-----", "----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-8s  %-13s  %s\n",
			i+1, s.Moves, s.Duration.Round(100*time.Millisecond), s.Mode, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
