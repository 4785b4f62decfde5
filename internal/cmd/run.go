package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/fosscope/toolkit/internal/logging"
)

// ErrNotATerminal is returned when the wizard is started without a terminal
var ErrNotATerminal = errors.New("the wizard needs an interactive terminal")

// RunCmd starts the TUI application
type RunCmd struct {
	Dev    bool   `help:"Enable development mode (shows version info in dialogs)"`
	Editor string `help:"Editor used to open the draft (overrides settings, $VISUAL, $EDITOR)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	runID := uuid.New().String()
	logging.Logger.Info("Starting contributor wizard", "run_id", runID)

	container, err := NewContainer(cli.settings, cli.editor(r.Editor))
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logging.Logger.Warn("Failed to close container", "error", err)
		}
	}()

	p := tea.NewProgram(
		container.NewModel(r.Dev, cli.keysConfig),
		tea.WithAltScreen(),
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally", "run_id", runID)
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
