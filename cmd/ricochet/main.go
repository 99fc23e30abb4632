// ricochet is a TUI arcade platform built around a swept collision engine.
//
// Usage:
//
//	ricochet list              - List available games
//	ricochet play <game>       - Play a game
//	ricochet menu              - Start menu to pick games interactively
//	ricochet serve             - Start SSH server for remote play
//	ricochet scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ricochet/scores.db)
//	--mute          - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ricochet-arcade/ricochet/internal/games/pong"
	_ "github.com/ricochet-arcade/ricochet/internal/games/teddytoss"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ricochet",
	Short: "Ricochet - bouncy retro games in your terminal",
	Long: `Ricochet is a terminal-based gaming platform where everything bounces.
All games run on a shared swept collision engine, so fast objects never
clip through each other no matter the tick rate.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  ricochet list
  ricochet play teddytoss
  ricochet menu
  ricochet serve --ssh :2222
  ricochet scores pong`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ricochet/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
