package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a pong match in this terminal. You control the left paddle.

Controls:
  Enter      - Start a match
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  Space/P    - Pause
  H          - Match history (while stopped or paused)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --seed 42
  pong play --player alice --config ./pong.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record matches under (default: current user)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, logger, closer := mustSetup(cmd, "pong")
	defer closer.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Loop.FPS
	rc.Seed = flagSeed

	opts := tui.Options{
		Runtime: rc,
		Arena:   cfg.Arena,
		Player:  playerName(),
		Logger:  logger,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
