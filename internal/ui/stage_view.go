package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ports"
	"github.com/fosscope/toolkit/internal/theme"
)

var stageDescriptions = map[domain.StageKind]string{
	domain.StageChooseTitle: "Pick an article to translate from the list of open topics and claim it.",
	domain.StageTranslate:   "Translate the claimed article in your draft. Keep the original structure and links.",
	domain.StageEdit:        "Write or paste your article in the draft. Reprints must keep the source attribution.",
	domain.StageProofread:   "Read the draft again, fix typos and check the formatting before publishing.",
	domain.StagePublish:     "Submit the draft to the upstream repository from your fork.",
}

// stageHasDraft reports whether the stage edits the draft file
func stageHasDraft(kind domain.StageKind) bool {
	return kind == domain.StageEdit || kind == domain.StageTranslate
}

// StageViewConfig holds what stage views need to open the draft
type StageViewConfig struct {
	DraftPath string
	Editor    string
	Opener    ports.EditorOpener
}

// StageView renders one numbered step of the procedure
type StageView struct {
	cfg   StageViewConfig
	keys  *KeyMap
	stage domain.Stage
}

// NewStageView creates the view of stage
func NewStageView(stage domain.Stage, cfg StageViewConfig, keys *KeyMap) *StageView {
	return &StageView{
		cfg:   cfg,
		keys:  keys,
		stage: stage,
	}
}

// Stage returns the dispatched stage
func (v *StageView) Stage() domain.Stage {
	return v.stage
}

// OpenDraft suspends the program and runs the editor on the draft
func (v *StageView) OpenDraft() tea.Cmd {
	if !stageHasDraft(v.stage.Kind) {
		return nil
	}
	if v.cfg.Opener == nil {
		return func() tea.Msg { return showNoticeMsg{err: fmt.Errorf("no editor available")} }
	}

	cmd, err := v.cfg.Opener.Command(v.cfg.DraftPath, v.cfg.Editor)
	if err != nil {
		logging.Logger.Warn("Failed to prepare editor", "draft", v.cfg.DraftPath, "error", err)
		return func() tea.Msg { return showNoticeMsg{err: fmt.Errorf("failed to open editor: %w", err)} }
	}

	logging.Logger.Info("Opening draft in editor", "draft", v.cfg.DraftPath, "stage", v.stage.Kind.String())
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// Update handles the stage actions
func (v *StageView) Update(msg tea.Msg) (*StageView, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenDraftMsg:
		return v, v.OpenDraft()
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Stage.OpenDraft.Binding) {
			return v, v.OpenDraft()
		}
	}
	return v, nil
}

// View renders the stage, or nothing for an out of range stage
func (v *StageView) View() string {
	if !v.stage.InRange() {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.SubtitleStyle.Render(fmt.Sprintf("Step %d: %s", v.stage.Step, v.stage.Kind.Label())))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(stageDescriptions[v.stage.Kind]))

	if stageHasDraft(v.stage.Kind) {
		b.WriteString("\n\n")
		draft := v.cfg.DraftPath
		if draft == "" {
			draft = "not configured (set draft_path in settings.toml)"
		}
		b.WriteString(theme.MutedStyle.Render("Draft: " + draft))
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle.Render("press " + v.keys.Stage.OpenDraft.Binding.Help().Key + " to open it in your editor"))
	}
	return b.String()
}
