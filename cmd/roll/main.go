// roll is a sliding-tile puzzle played with the mouse in the terminal.
//
// Usage:
//
//	roll                     - Pick a stage from the menu
//	roll play [stage]        - Play a stage (menu when omitted)
//	roll list                - List game modes
//	roll stages              - List stages with best solves
//	roll records [stage]     - Show best solves
//	roll validate <file...>  - Check stage files
//	roll serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.roll/records.db)
//	--config <path>      - Use a custom roll.yaml
//	--stages <dir>       - Load stages from a directory
//	--log-level <level>  - debug, info, warn or error
//	--theme <name>       - default or mono
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-roll/internal/games/roll"
	"github.com/vovakirdan/tui-roll/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagStages   string
	flagLogLevel string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll - slide tiles into place in your terminal",
	Long: `Roll is a sliding-tile puzzle for the terminal.
Drag a tile with the mouse; it rolls one cell toward the drag once you
pass the snap threshold, as long as the target cell is free.

Available commands:
  play      - Play a stage (or pick one from the menu)
  list      - Show game modes
  stages    - Show stages and best solves
  records   - View best solves
  validate  - Check stage files
  serve     - Start SSH server for remote play

Examples:
  roll
  roll play 02
  roll play --practice --feel loose
  roll stages --stages ./my-stages
  roll serve --ssh :2222`,
	PersistentPreRunE: setupGlobals,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roll/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom roll.yaml")
	rootCmd.PersistentFlags().StringVar(&flagStages, "stages", "", "Directory with stage files (default: builtin stages)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupGlobals applies the log level and theme flags.
func setupGlobals(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return fmt.Errorf("invalid --theme: %w", err)
	}
	tui.SetTheme(theme)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d", flagFPS)
	}
	return nil
}
