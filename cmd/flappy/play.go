package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/engine"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/scores"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Flap (also starts and restarts a round)
  Click        - Flap
  Tab          - Session scoreboard (outside of play)
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults when not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if runtimeCfg.Seed == 0 {
		runtimeCfg.Seed = time.Now().UnixNano()
	}

	eng := engine.New(cfg.EngineParams(), runtimeCfg.Seed)
	board := scores.NewBoard()

	if err := tui.Run(eng, board, runtimeCfg, playerName()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	// The board dies with the process; give the player a last look.
	if best := board.Best(); best > 0 {
		fmt.Printf("Best this session: %d\n", best)
	}
}

// playerName labels local rounds on the session scoreboard.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
