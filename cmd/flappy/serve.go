package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every connection gets its own game; all connections share one in-memory
leaderboard that empties when the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                           # Listen on :23234
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting, overrides config")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the serve section
	if flagSSHAddr != "" {
		cfg.Serve.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Serve.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Serve.IdleTimeoutMinutes = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flappy SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
