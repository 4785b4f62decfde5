package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/services"
	"github.com/fosscope/toolkit/internal/theme"
)

// WorkflowHost owns one pass through the workflow: the gate at step 0 and
// the stage views of the fixed genre after it.
type WorkflowHost struct {
	contributors map[domain.Genre]domain.RepoIdentity
	gate         *GenreGate
	keys         *KeyMap
	notice       *Notice
	service      *services.WorkflowService
	session      domain.Session
	stage        *StageView
	stageCfg     StageViewConfig
	upstreams    map[domain.Genre]domain.RepoIdentity
	workflow     *domain.Workflow
}

// NewWorkflowHost creates a host at the gate. Errors are raised on notice.
func NewWorkflowHost(session domain.Session, service *services.WorkflowService, stageCfg StageViewConfig, notice *Notice, keys *KeyMap) *WorkflowHost {
	upstreams := make(map[domain.Genre]domain.RepoIdentity, len(domain.Genres))
	contributors := make(map[domain.Genre]domain.RepoIdentity, len(domain.Genres))
	for _, g := range domain.Genres {
		upstreams[g] = service.Upstream(g)
		contributors[g] = service.ContributorRepo(g)
	}

	h := &WorkflowHost{
		contributors: contributors,
		keys:         keys,
		notice:       notice,
		service:      service,
		session:      session,
		stageCfg:     stageCfg,
		upstreams:    upstreams,
		workflow:     domain.NewWorkflow(),
	}
	h.gate = h.newGate()
	return h
}

func (h *WorkflowHost) newGate() *GenreGate {
	return NewGenreGate(h.session.AccountName, h.upstreams, h.contributors, h.keys)
}

// Workflow returns the navigation state
func (h *WorkflowHost) Workflow() *domain.Workflow {
	return h.workflow
}

// Gate returns the gate shown at step 0
func (h *WorkflowHost) Gate() *GenreGate {
	return h.gate
}

// Stage returns the view of the current step, nil at the gate
func (h *WorkflowHost) Stage() *StageView {
	return h.stage
}

// CapturesInput reports whether a text input currently takes key presses
func (h *WorkflowHost) CapturesInput() bool {
	return h.workflow.AtGate() && h.gate.CapturesInput()
}

// ActionContext describes the host for the command palette
func (h *WorkflowHost) ActionContext() ActionContext {
	return ActionContext{
		Stage: h.workflow.Current(),
		Steps: domain.StepCount(h.workflow.Genre()),
	}
}

// SelectStep moves to step. Step 0 shows a fresh gate; locked steps are
// ignored.
func (h *WorkflowHost) SelectStep(step int) {
	if err := h.workflow.SelectStep(step); err != nil {
		logging.Logger.Debug("Ignoring locked step", "step", step, "error", err)
		return
	}

	if h.workflow.AtGate() {
		h.gate = h.newGate()
		h.stage = nil
		return
	}
	h.stage = NewStageView(h.workflow.Current(), h.stageCfg, h.keys)
}

func (h *WorkflowHost) moveStep(delta int) {
	last := domain.StepCount(h.workflow.Genre())
	next := h.workflow.Step() + delta
	if next < domain.GateStep || next > last {
		return
	}
	h.SelectStep(next)
}

// CompleteGate validates the gate and, when valid, submits the selection
// and moves to step 1. Failures raise the notice and leave the gate as is.
func (h *WorkflowHost) CompleteGate() {
	sel, err := h.gate.Complete()
	if err != nil {
		h.notice.Show(err)
		return
	}

	if _, err := h.service.CompleteSelection(context.Background(), sel); err != nil {
		h.notice.Show(err)
		return
	}

	if err := h.workflow.CompleteGate(sel.Genre); err != nil {
		h.notice.Show(err)
		return
	}
	h.stage = NewStageView(h.workflow.Current(), h.stageCfg, h.keys)
}

// jumpTarget returns the step selected by a jump key: the position of the
// pressed key in the binding. With the default 1..9 the key matches the
// number printed on the indicator button.
func (h *WorkflowHost) jumpTarget(msg tea.KeyMsg) (int, bool) {
	for i, k := range h.keys.Workflow.JumpStep.Binding.Keys() {
		if msg.String() == k {
			return i, true
		}
	}
	return 0, false
}

// Update handles navigation and forwards the rest to the gate or stage
func (h *WorkflowHost) Update(msg tea.Msg) (*WorkflowHost, tea.Cmd) {
	if h.notice.Update(msg) {
		return h, nil
	}

	switch msg := msg.(type) {
	case showNoticeMsg:
		h.notice.Show(msg.err)
		return h, nil
	case editorFinishedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Editor exited with error", "error", msg.err)
			h.notice.Show(fmt.Errorf("editor exited with error: %w", msg.err))
		}
		return h, nil
	case SelectStepMsg:
		h.SelectStep(msg.Step)
		return h, nil
	case NextStepMsg:
		h.moveStep(1)
		return h, nil
	case PrevStepMsg:
		h.moveStep(-1)
		return h, nil
	case tea.KeyMsg:
		if h.CapturesInput() {
			return h.forward(msg)
		}
		switch {
		case key.Matches(msg, h.keys.Workflow.JumpStep.Binding):
			if step, ok := h.jumpTarget(msg); ok {
				h.SelectStep(step)
			}
			return h, nil
		case key.Matches(msg, h.keys.Workflow.NextStep.Binding):
			h.moveStep(1)
			return h, nil
		case key.Matches(msg, h.keys.Workflow.PrevStep.Binding):
			h.moveStep(-1)
			return h, nil
		case key.Matches(msg, h.keys.Workflow.ResetGate.Binding):
			h.SelectStep(domain.GateStep)
			return h, nil
		case key.Matches(msg, h.keys.Workflow.EditIdentity.Binding):
			return h, func() tea.Msg { return RequestEditMsg{} }
		case h.workflow.AtGate() && key.Matches(msg, h.keys.Gate.Complete.Binding):
			h.CompleteGate()
			return h, nil
		}
	}

	return h.forward(msg)
}

func (h *WorkflowHost) forward(msg tea.Msg) (*WorkflowHost, tea.Cmd) {
	var cmd tea.Cmd
	if h.workflow.AtGate() {
		h.gate, cmd = h.gate.Update(msg)
	} else if h.stage != nil {
		h.stage, cmd = h.stage.Update(msg)
	}
	return h, cmd
}

// View renders the step indicator above the gate or the current stage
func (h *WorkflowHost) View() string {
	var b strings.Builder
	b.WriteString(renderStepIndicator(h.workflow.Indicator()))
	b.WriteString("\n\n")

	if h.workflow.AtGate() {
		b.WriteString(h.gate.View())
	} else if h.stage != nil {
		b.WriteString(h.stage.View())
	}

	if h.session.AccountName != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.MutedStyle.Render("Signed in as " + h.session.AccountName))
	}
	return b.String()
}
