package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/config"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file checked for client keys (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = filepath.Join("~", ".ssh", "authorized_keys")
	}

	cfg := server.Config{
		AuthorizedKeysPath: config.ExpandPath(authorizedKeys),
		Host:               s.Host,
		HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
		Port:               s.Port,
	}

	srv, err := server.NewServer(cfg, func() (tea.Model, io.Closer, error) {
		container, err := NewContainer(cli.settings, "")
		if err != nil {
			return nil, nil, err
		}
		// Editors would run on the server, not in front of the contributor
		container.StageConfig.Opener = nil
		return container.NewModel(false, cli.keysConfig), container, nil
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", srv.Addr())
	logging.Logger.Info("Serving contributor wizard", "address", srv.Addr(), "authorized_keys", cfg.AuthorizedKeysPath)
	return srv.Start(ctx)
}
