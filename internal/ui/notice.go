package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/theme"
)

const noticeWidth = 50

// Notice is a blocking message box. While it is showing, the next key
// press dismisses it and does nothing else.
type Notice struct {
	err error
}

// NewNotice creates a hidden notice
func NewNotice() *Notice {
	return &Notice{}
}

// Show raises the notice for err
func (n *Notice) Show(err error) {
	n.err = err
}

// Active reports whether the notice is showing
func (n *Notice) Active() bool {
	return n.err != nil
}

// Err returns the error being shown
func (n *Notice) Err() error {
	return n.err
}

// Dismiss hides the notice
func (n *Notice) Dismiss() {
	n.err = nil
}

// Update dismisses the notice on any key. It returns true when the message
// was consumed.
func (n *Notice) Update(msg tea.Msg) bool {
	if !n.Active() {
		return false
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		n.Dismiss()
		return true
	}
	return false
}

// View renders the notice box, or "" when hidden
func (n *Notice) View() string {
	if !n.Active() {
		return ""
	}
	body := theme.NoticeTitleStyle.Render("Cannot continue") + "\n\n" +
		theme.NormalStyle.Render(formatErrorForDisplay(n.err, noticeWidth)) + "\n\n" +
		theme.MutedStyle.Render("press any key")
	return theme.NoticeStyle.Render(body)
}
