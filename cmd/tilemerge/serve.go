package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeSize   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every session gets its own game. Finished games from all sessions are
recorded in the same history database.

Examples:
  tilemerge serve                           # Listen on the configured address
  tilemerge serve --ssh :2222               # Listen on port 2222
  tilemerge serve --host-key ./my_host_key  # Use specific host key
  tilemerge serve --size 4                  # Skip the size picker`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeSize, "size", 0, "Fixed board size for every session (0 = let players pick)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.SSHServerConfigFrom(cfg)
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagServeSize != 0 {
		if flagServeSize < config.MinBoardSize || flagServeSize > config.MaxBoardSize {
			return fmt.Errorf("--size %d outside [%d, %d]", flagServeSize, config.MinBoardSize, config.MaxBoardSize)
		}
		srvCfg.BoardSize = flagServeSize
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, "tilemerge-ssh")

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting tilemerge SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
