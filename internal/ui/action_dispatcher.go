package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/domain"
)

// ActionContext describes what the workflow can do right now
type ActionContext struct {
	Stage domain.Stage
	Steps int // number of unlocked numbered steps
}

// ActionDispatcher maps key definitions to UI messages.
type ActionDispatcher struct {
	ctx ActionContext
}

// NewActionDispatcher creates a new action dispatcher for the given context
func NewActionDispatcher(ctx ActionContext) *ActionDispatcher {
	return &ActionDispatcher{ctx: ctx}
}

// Available reports whether def can run in the current context
func (d *ActionDispatcher) Available(def KeyDefinition) bool {
	switch def.Msg.(type) {
	case nil:
		return false
	case OpenDraftMsg:
		return stageHasDraft(d.ctx.Stage.Kind)
	case NextStepMsg, PrevStepMsg:
		return d.ctx.Steps > 0
	}
	return true
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if !d.Available(def) {
		return nil
	}
	return def.Msg
}
