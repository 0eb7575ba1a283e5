package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to tetris.

Controls (defaults, rebindable in the config file):
  Left/A/H    - Move left
  Right/D/L   - Move right
  Down/S/J    - Soft drop
  Up/W/K      - Rotate
  Space       - Hard drop
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	keys, err := loadKeys()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), keys); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
