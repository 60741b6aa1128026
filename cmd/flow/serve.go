package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the puzzle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker.
Progress is stored per SSH user name in the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config (generated if missing)

Examples:
  flow serve                           # Listen on the configured address
  flow serve --ssh :2222               # Listen on port 2222
  flow serve --host-key ./my_host_key  # Use specific host key
  flow serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := loadApp(false)
	exitOnError("loading levels", err)
	defer a.Close()

	sshCfg := a.cfg.SSH
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     sshCfg.Address,
		HostKeyPath: config.ExpandHome(sshCfg.HostKey),
		DBPath:      a.cfg.Storage.DBPath,
		IdleTimeout: sshCfg.IdleTimeout(),
		Catalog:     a.catalog,
		Theme:       a.theme,
		Logger:      a.logger.WithPrefix("flow-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	exitOnError("creating server", err)

	fmt.Printf("Starting flow SSH server on %s (%d levels)\n", server.Addr(), a.catalog.Len())
	if !server.HasStore() {
		fmt.Println("Warning: progress will not be saved")
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
