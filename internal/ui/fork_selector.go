package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/theme"
)

// forkLabels are the card texts of one selector variant
type forkLabels struct {
	existingTitle string
	newTitle      string
	newSubtitle   string
}

func labelsFor(g domain.Genre, upstream domain.RepoIdentity) forkLabels {
	labels := forkLabels{
		existingTitle: "Use my fork of " + upstream.Name,
		newTitle:      "Fork " + upstream.Name + " as a new repository",
		newSubtitle:   "Articles are submitted from this repository",
	}
	if g == domain.GenreTranslation {
		labels.newSubtitle = "Translations are submitted from this repository"
	}
	return labels
}

// ForkSelector chooses between reusing the contributor's existing fork and
// creating a new one. One selector exists per genre; it starts unselected.
type ForkSelector struct {
	contributor domain.RepoIdentity
	editor      *RepoEditor
	genre       domain.Genre
	keys        *KeyMap
	labels      forkLabels
	owner       func() string
	strategy    domain.ForkStrategy
	upstream    domain.RepoIdentity
}

// NewForkSelector creates the selector variant for genre. owner returns the
// stored repository owner, used to show the existing fork. contributor is
// the configured existing fork; its empty fields fall back to owner and the
// upstream name.
func NewForkSelector(genre domain.Genre, upstream, contributor domain.RepoIdentity, editor *RepoEditor, owner func() string, keys *KeyMap) *ForkSelector {
	return &ForkSelector{
		contributor: contributor,
		editor:      editor,
		genre:       genre,
		keys:        keys,
		labels:      labelsFor(genre, upstream),
		owner:       owner,
		upstream:    upstream,
	}
}

// Genre returns the genre this selector completes with
func (s *ForkSelector) Genre() domain.Genre {
	return s.genre
}

// Strategy returns the selected strategy
func (s *ForkSelector) Strategy() domain.ForkStrategy {
	return s.strategy
}

// Editor returns the repository editor revealed by SelectNew
func (s *ForkSelector) Editor() *RepoEditor {
	return s.editor
}

// SelectExisting chooses the existing fork. The stored identity is kept.
func (s *ForkSelector) SelectExisting() {
	s.strategy = domain.ForkUseExisting
}

// SelectNew chooses a new repository and opens the editor. Choosing it
// again is a no-op; the change key reopens the editor.
func (s *ForkSelector) SelectNew() tea.Cmd {
	if s.strategy == domain.ForkCreateNew {
		return nil
	}
	s.strategy = domain.ForkCreateNew
	return s.editor.Change()
}

// ExistingFork is the repository used for ForkUseExisting
func (s *ForkSelector) ExistingFork() domain.RepoIdentity {
	return domain.ExistingForkFor(s.owner(), s.upstream, s.contributor)
}

// CapturesInput reports whether the revealed editor takes key presses
func (s *ForkSelector) CapturesInput() bool {
	return s.strategy == domain.ForkCreateNew && s.editor.CapturesInput()
}

// Update handles strategy keys, or forwards to the editor while it is focused
func (s *ForkSelector) Update(msg tea.Msg) (*ForkSelector, tea.Cmd) {
	if s.CapturesInput() {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Gate.UseExisting.Binding):
		s.SelectExisting()
	case key.Matches(keyMsg, s.keys.Gate.CreateNew.Binding):
		return s, s.SelectNew()
	case s.strategy == domain.ForkCreateNew && key.Matches(keyMsg, s.keys.RepoEditor.Change.Binding):
		return s, s.editor.Change()
	}
	return s, nil
}

// View renders the two strategy cards, at most one of them selected
func (s *ForkSelector) View() string {
	existing := theme.CardTitleStyle.Render(s.labels.existingTitle) + "\n" +
		theme.CardSubtitleStyle.Render(s.ExistingFork().String())
	newRepo := theme.CardTitleStyle.Render(s.labels.newTitle) + "\n" +
		theme.CardSubtitleStyle.Render(s.labels.newSubtitle)

	existingStyle, newStyle := theme.CardStyle, theme.CardStyle
	switch s.strategy {
	case domain.ForkUseExisting:
		existingStyle = theme.CardSelectedStyle
	case domain.ForkCreateNew:
		newStyle = theme.CardSelectedStyle
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		existingStyle.Render(existing),
		" ",
		newStyle.Render(newRepo),
	)
	hint := theme.MutedStyle.Render(fmt.Sprintf("%s use existing • %s create new",
		s.keys.Gate.UseExisting.Binding.Help().Key,
		s.keys.Gate.CreateNew.Binding.Help().Key))

	view := cards + "\n" + hint
	if s.strategy == domain.ForkCreateNew {
		view += "\n\n" + s.editor.View()
	}
	return view
}
