package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(b *strings.Builder, title string, bindings ...key.Binding) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, binding := range bindings {
		b.WriteString(renderBinding(binding))
	}
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	renderGroup(&b, "Steps",
		keys.Workflow.JumpStep.Binding,
		keys.Workflow.PrevStep.Binding,
		keys.Workflow.NextStep.Binding,
		keys.Workflow.ResetGate.Binding,
		keys.Workflow.EditIdentity.Binding)

	renderGroup(&b, "Choose genre",
		keys.Gate.SelectTranslation.Binding,
		keys.Gate.SelectOriginal.Binding,
		keys.Gate.UseExisting.Binding,
		keys.Gate.CreateNew.Binding,
		keys.Gate.Complete.Binding)

	renderGroup(&b, "Repository",
		keys.RepoEditor.Change.Binding,
		keys.RepoEditor.NextField.Binding,
		keys.RepoEditor.Save.Binding,
		keys.RepoEditor.Leave.Binding)

	renderGroup(&b, "Stages",
		keys.Stage.OpenDraft.Binding)

	renderGroup(&b, "Application",
		keys.Application.CommandPalette.Binding,
		keys.Application.Help.Binding,
		keys.Application.Quit.Binding,
		keys.Application.ForceQuit.Binding)

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Tips") + "\n")
	for _, tip := range keys.Tips() {
		b.WriteString(RenderTip(tip) + "\n")
	}

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-7, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, " + h.keys.Application.Quit.Binding.Help().Key +
		" or " + h.keys.Application.Help.Binding.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
