package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosscope/toolkit/internal/domain"
)

func newTestGate(account string) *GenreGate {
	keys := NewKeyMap(nil)
	return NewGenreGate(account, domain.DefaultUpstreams, nil, &keys)
}

func TestGenreGate_CompleteWithoutGenre(t *testing.T) {
	gate := newTestGate("alice")

	_, err := gate.Complete()

	assert.ErrorIs(t, err, domain.ErrNoForkStrategySelected)
}

func TestGenreGate_CompleteWithoutStrategy(t *testing.T) {
	gate := newTestGate("alice")
	gate.SelectGenre(domain.GenreOriginal)

	_, err := gate.Complete()

	assert.ErrorIs(t, err, domain.ErrNoForkStrategySelected)
}

func TestGenreGate_CompleteWithoutAccount(t *testing.T) {
	gate := newTestGate("")
	gate.SelectGenre(domain.GenreTranslation)
	gate.Selector().SelectExisting()

	_, err := gate.Complete()

	assert.ErrorIs(t, err, domain.ErrNoAccountSelected)
}

func TestGenreGate_CreateNewRequiresName(t *testing.T) {
	for _, account := range []string{"", "alice"} {
		t.Run("account="+account, func(t *testing.T) {
			gate := newTestGate(account)
			gate.SelectGenre(domain.GenreOriginal)
			gate.Selector().SelectNew()
			gate.Selector().Editor().Save()

			_, err := gate.Complete()

			if account == "" {
				assert.ErrorIs(t, err, domain.ErrNoAccountSelected)
				return
			}
			assert.ErrorIs(t, err, domain.ErrNoRepositoryName)
		})
	}
}

func TestGenreGate_CreateNewWithOwnerButNoName(t *testing.T) {
	gate := newTestGate("alice")
	gate.SelectGenre(domain.GenreOriginal)
	gate.Selector().SelectNew()

	// Nothing saved: the stored name is still empty
	_, err := gate.Complete()

	assert.ErrorIs(t, err, domain.ErrNoRepositoryName)
}

func TestGenreGate_UseExistingSelection(t *testing.T) {
	gate := newTestGate("alice")
	gate.SelectGenre(domain.GenreTranslation)
	gate.Selector().SelectExisting()

	sel, err := gate.Complete()

	require.NoError(t, err)
	assert.Equal(t, domain.ForkSelection{
		Account:  "alice",
		Genre:    domain.GenreTranslation,
		Repo:     domain.RepoIdentity{Owner: "alice", Name: "TranslateProject"},
		Strategy: domain.ForkUseExisting,
		Upstream: domain.DefaultUpstreams[domain.GenreTranslation],
	}, sel)
}

func TestGenreGate_CreateNewSelectionUsesStoredIdentity(t *testing.T) {
	gate := newTestGate("alice")
	gate.SelectGenre(domain.GenreOriginal)
	gate.Selector().SelectNew()
	typeText(t, func(msg tea.Msg) { gate, _ = gate.Update(msg) }, "essays")
	gate, _ = gate.Update(enterKey)

	sel, err := gate.Complete()

	require.NoError(t, err)
	assert.Equal(t, domain.RepoIdentity{Owner: "alice", Name: "essays"}, sel.Repo)
	assert.Equal(t, domain.ForkCreateNew, sel.Strategy)
	assert.Equal(t, "alice", sel.Account)
}

func TestGenreGate_SavedOwnerIsTheAccount(t *testing.T) {
	gate := newTestGate("")
	gate.SelectGenre(domain.GenreOriginal)
	gate.Selector().SelectNew()
	gate, _ = gate.Update(tabKey)
	typeText(t, func(msg tea.Msg) { gate, _ = gate.Update(msg) }, "bob")
	gate, _ = gate.Update(tabKey)
	typeText(t, func(msg tea.Msg) { gate, _ = gate.Update(msg) }, "notes")
	gate, _ = gate.Update(enterKey)

	sel, err := gate.Complete()

	require.NoError(t, err)
	assert.Equal(t, "bob", sel.Account)
	assert.Equal(t, domain.RepoIdentity{Owner: "bob", Name: "notes"}, sel.Repo)
}

func TestGenreGate_SwitchingGenreResetsStrategyKeepsIdentity(t *testing.T) {
	gate := newTestGate("alice")
	gate.SelectGenre(domain.GenreOriginal)
	gate.Selector().SelectNew()
	typeText(t, func(msg tea.Msg) { gate, _ = gate.Update(msg) }, "essays")
	gate, _ = gate.Update(enterKey)

	gate, _ = gate.Update(runeKey("T"))

	assert.Equal(t, domain.GenreTranslation, gate.Genre())
	assert.Equal(t, domain.ForkUnselected, gate.Selector().Strategy())
	assert.Equal(t, domain.RepoIdentity{Owner: "alice", Name: "essays"}, gate.Repo())
}

func TestGenreGate_ChoosingSameGenreKeepsStrategy(t *testing.T) {
	gate := newTestGate("alice")
	gate, _ = gate.Update(runeKey("T"))
	gate, _ = gate.Update(runeKey("x"))
	selector := gate.Selector()
	require.Equal(t, domain.ForkUseExisting, selector.Strategy())

	gate, _ = gate.Update(runeKey("T"))

	assert.Same(t, selector, gate.Selector())
	assert.Equal(t, domain.ForkUseExisting, gate.Selector().Strategy())

	sel, err := gate.Complete()
	require.NoError(t, err)
	assert.Equal(t, domain.GenreTranslation, sel.Genre)
}

func TestGenreGate_GenreKeysIgnoredWhileTyping(t *testing.T) {
	gate := newTestGate("alice")
	gate, _ = gate.Update(runeKey("O"))
	gate.Selector().SelectNew()

	gate, _ = gate.Update(runeKey("T"))

	assert.Equal(t, domain.GenreOriginal, gate.Genre())
	assert.True(t, gate.CapturesInput())
}

func TestGenreGate_ViewShowsUpstreams(t *testing.T) {
	gate := newTestGate("alice")

	view := gate.View()

	assert.Contains(t, view, "FOSScope/TranslateProject")
	assert.Contains(t, view, "FOSScope/Articles")
}
