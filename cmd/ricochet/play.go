package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ricochet-arcade/ricochet/internal/core"
	"github.com/ricochet-arcade/ricochet/internal/games/pong"
	"github.com/ricochet-arcade/ricochet/internal/games/teddytoss"
	"github.com/ricochet-arcade/ricochet/internal/platform/audio"
	"github.com/ricochet-arcade/ricochet/internal/platform/tui"
	"github.com/ricochet-arcade/ricochet/internal/registry"
	"github.com/ricochet-arcade/ricochet/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D or Left/Right  - Move (Teddy Toss)
  W/S or Up/Down     - Move paddle (Pong)
  Space/F            - Fire
  P/Esc              - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  ricochet play teddytoss
  ricochet play pong --difficulty easy
  ricochet play teddytoss --difficulty fixed
  ricochet play teddytoss --config ./my-teddytoss.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameOptions pushes config path and difficulty preset into the
// selected game's package before the game is created.
func applyGameOptions(gameID, configPath, difficulty string) {
	switch gameID {
	case "teddytoss":
		teddytoss.SetConfigPath(configPath)
		teddytoss.SetDifficultyPreset(difficulty)
	case "pong":
		pong.SetConfigPath(configPath)
		pong.SetDifficultyPreset(difficulty)
	}
}

// newSoundPlayer builds the shared sound player, honoring --mute.
// Audio failures are reported but never fatal; the games are perfectly
// playable silent.
func newSoundPlayer() *audio.Player {
	sound := audio.NewPlayer()
	if flagMute {
		return sound
	}
	if err := sound.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", err)
	}
	return sound
}

// terminalSize returns the current terminal dimensions, with sane
// fallbacks when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ricochet list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	applyGameOptions(gameID, flagConfig, flagDifficulty)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := newSoundPlayer()

	// Run the game
	runErr := tui.Run(game, store, sound, cfg)

	// Close store before potential exit
	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
