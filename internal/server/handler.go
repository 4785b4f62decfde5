package server

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/fosscope/toolkit/internal/logging"
)

// SessionFactory builds the model of one connection and the resources to
// release when the connection ends
type SessionFactory func() (tea.Model, io.Closer, error)

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, closer, err := s.newSession()
	if err != nil {
		logging.Logger.Error("Failed to create SSH session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	startTime := time.Now()
	go func() {
		<-sess.Context().Done()
		if err := closer.Close(); err != nil {
			logging.Logger.Error("Failed to close SSH session resources", "error", err, "session_id", sessionID)
		}
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel shows an error and quits on the first message
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
