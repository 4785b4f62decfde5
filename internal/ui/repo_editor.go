package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/theme"
)

const (
	fieldOwner = iota
	fieldName
)

// RepoEditor edits the owner/name pair of the repository a new fork is
// created as. It is either editing (two inputs) or read-only.
type RepoEditor struct {
	editing bool
	focused bool
	focus   int
	inputs  [2]textinput.Model
	keys    *KeyMap
	onSave  func(owner, name string)
	saved   domain.RepoIdentity
}

// NewRepoEditor creates a read-only editor showing initial
func NewRepoEditor(initial domain.RepoIdentity, keys *KeyMap, onSave func(owner, name string)) *RepoEditor {
	owner := textinput.New()
	owner.Prompt = "Owner: "
	owner.Placeholder = "account"
	owner.CharLimit = 100
	owner.Width = 30
	owner.SetValue(initial.Owner)

	name := textinput.New()
	name.Prompt = "Name:  "
	name.Placeholder = "repository"
	name.CharLimit = 100
	name.Width = 30
	name.SetValue(initial.Name)

	return &RepoEditor{
		inputs: [2]textinput.Model{owner, name},
		keys:   keys,
		onSave: onSave,
		saved:  initial,
	}
}

// Editing reports whether the inputs are shown
func (e *RepoEditor) Editing() bool {
	return e.editing
}

// CapturesInput reports whether key presses go to the text inputs
func (e *RepoEditor) CapturesInput() bool {
	return e.editing && e.focused
}

// Identity returns the last saved identity
func (e *RepoEditor) Identity() domain.RepoIdentity {
	return e.saved
}

// Change switches to edit mode and focuses the name input
func (e *RepoEditor) Change() tea.Cmd {
	e.editing = true
	e.focused = true
	return e.setFocus(fieldName)
}

// Save commits the input values and switches to read-only mode.
// There is no validation: empty values are stored as they are.
func (e *RepoEditor) Save() {
	owner := strings.TrimSpace(e.inputs[fieldOwner].Value())
	name := strings.TrimSpace(e.inputs[fieldName].Value())

	e.saved = domain.RepoIdentity{Owner: owner, Name: name}
	e.editing = false
	e.focused = false
	for i := range e.inputs {
		e.inputs[i].Blur()
	}

	logging.Logger.Debug("Repository identity saved", "owner", owner, "name", name)
	if e.onSave != nil {
		e.onSave(owner, name)
	}
}

func (e *RepoEditor) setFocus(field int) tea.Cmd {
	e.focus = field
	var cmd tea.Cmd
	for i := range e.inputs {
		if i == field {
			cmd = e.inputs[i].Focus()
			continue
		}
		e.inputs[i].Blur()
	}
	return cmd
}

// Update handles keys while the editor is focused
func (e *RepoEditor) Update(msg tea.Msg) (*RepoEditor, tea.Cmd) {
	if !e.CapturesInput() {
		return e, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, e.keys.RepoEditor.Save.Binding):
			e.Save()
			return e, nil
		case key.Matches(keyMsg, e.keys.RepoEditor.NextField.Binding):
			return e, e.setFocus((e.focus + 1) % len(e.inputs))
		case key.Matches(keyMsg, e.keys.RepoEditor.Leave.Binding):
			e.focused = false
			for i := range e.inputs {
				e.inputs[i].Blur()
			}
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return e, cmd
}

// View renders the inputs in edit mode or "owner / name" otherwise
func (e *RepoEditor) View() string {
	if !e.editing {
		return theme.NormalStyle.Render(e.saved.String()) + "  " +
			theme.MutedStyle.Render("("+e.keys.RepoEditor.Change.Binding.Help().Key+" to change)")
	}

	var b strings.Builder
	b.WriteString(e.inputs[fieldOwner].View())
	b.WriteString("\n")
	b.WriteString(e.inputs[fieldName].View())
	b.WriteString("\n")
	if e.focused {
		keys := e.keys.RepoEditor
		b.WriteString(theme.MutedStyle.Render(keys.Save.Binding.Help().Key + " save • " +
			keys.NextField.Binding.Help().Key + " switch field • " +
			keys.Leave.Binding.Help().Key + " leave"))
	} else {
		b.WriteString(theme.MutedStyle.Render(e.keys.RepoEditor.Change.Binding.Help().Key + " to continue editing"))
	}
	return b.String()
}
