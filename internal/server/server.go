package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/fosscope/toolkit/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Config holds the listener and authentication settings
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Port               string
}

// Server serves the contributor wizard over SSH. Each connection gets its
// own session from the factory, so no credentials cross connections.
type Server struct {
	cfg        Config
	newSession SessionFactory
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, newSession SessionFactory) (*Server, error) {
	s := &Server{
		cfg:        cfg,
		newSession: newSession,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.wishServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting SSH server", "address", s.Addr())
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}
