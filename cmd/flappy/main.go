// flappy is a terminal Flappy Bird: tap to climb, slip through the pipe
// gaps, don't touch anything.
//
// Usage:
//
//	flappy               - Play in the current terminal
//	flappy play          - Same, explicitly
//	flappy serve         - Start an SSH server for remote play
//	flappy version       - Print the version
//
// Global flags:
//
//	--fps <rate>      - Tick rate (default: 60)
//	--seed <value>    - RNG seed for reproducible pipe streams (0 = random)
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `flappy is a terminal rendition of the one-button arcade classic.
A bird falls under gravity; press Space (or click) to flap upward and pass
through the gaps in an endless stream of pipes.

High scores are kept in memory for the lifetime of the process only.

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222`,
	Run: runPlay, // Bare `flappy` starts a game
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
