package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/theme"
)

// GenreGate is step 0 of the workflow: the contributor picks a genre and
// how to obtain a fork of its upstream.
type GenreGate struct {
	contributors map[domain.Genre]domain.RepoIdentity
	genre        domain.Genre
	keys         *KeyMap
	repo         domain.RepoIdentity
	selector     *ForkSelector
	upstreams    map[domain.Genre]domain.RepoIdentity
}

// NewGenreGate creates a gate with no genre chosen. The stored repository
// owner is seeded from account.
func NewGenreGate(account string, upstreams, contributors map[domain.Genre]domain.RepoIdentity, keys *KeyMap) *GenreGate {
	return &GenreGate{
		contributors: contributors,
		keys:         keys,
		repo:         domain.RepoIdentity{Owner: account},
		upstreams:    upstreams,
	}
}

// Genre returns the chosen genre card
func (g *GenreGate) Genre() domain.Genre {
	return g.genre
}

// Selector returns the fork selector of the chosen genre, nil before a
// genre is chosen
func (g *GenreGate) Selector() *ForkSelector {
	return g.selector
}

// Repo returns the stored repository identity
func (g *GenreGate) Repo() domain.RepoIdentity {
	return g.repo
}

// SelectGenre chooses a genre card. A fresh selector is composed for it,
// so the strategy starts unselected; the stored identity is kept.
// Choosing the card already chosen changes nothing.
func (g *GenreGate) SelectGenre(genre domain.Genre) {
	if genre == domain.GenreUnselected || (genre == g.genre && g.selector != nil) {
		return
	}
	g.genre = genre
	editor := NewRepoEditor(g.repo, g.keys, g.storeRepo)
	g.selector = NewForkSelector(genre, g.upstreams[genre], g.contributors[genre], editor, func() string { return g.repo.Owner }, g.keys)
	logging.Logger.Debug("Genre chosen", "genre", genre.String())
}

func (g *GenreGate) storeRepo(owner, name string) {
	g.repo = domain.RepoIdentity{Owner: owner, Name: name}
}

// Complete builds the selection and validates it. The selection is
// returned even when invalid so the caller can log what was missing.
func (g *GenreGate) Complete() (domain.ForkSelection, error) {
	sel := domain.ForkSelection{
		Account: g.repo.Owner,
		Genre:   g.genre,
	}
	if g.selector != nil {
		sel.Strategy = g.selector.Strategy()
		sel.Upstream = g.upstreams[g.genre]
		switch sel.Strategy {
		case domain.ForkUseExisting:
			sel.Repo = g.selector.ExistingFork()
		case domain.ForkCreateNew:
			sel.Repo = g.repo
		}
	}
	return sel, domain.ValidateSelection(sel)
}

// CapturesInput reports whether a text input currently takes key presses
func (g *GenreGate) CapturesInput() bool {
	return g.selector != nil && g.selector.CapturesInput()
}

// Update handles genre keys and forwards the rest to the fork selector
func (g *GenreGate) Update(msg tea.Msg) (*GenreGate, tea.Cmd) {
	if !g.CapturesInput() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, g.keys.Gate.SelectTranslation.Binding):
				g.SelectGenre(domain.GenreTranslation)
				return g, nil
			case key.Matches(keyMsg, g.keys.Gate.SelectOriginal.Binding):
				g.SelectGenre(domain.GenreOriginal)
				return g, nil
			}
		}
	}

	if g.selector == nil {
		return g, nil
	}
	var cmd tea.Cmd
	g.selector, cmd = g.selector.Update(msg)
	return g, cmd
}

// View renders the genre cards and, once a genre is chosen, its selector
func (g *GenreGate) View() string {
	var b strings.Builder
	b.WriteString(theme.SubtitleStyle.Render("What are you contributing?"))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(domain.Genres)*2)
	for i, genre := range domain.Genres {
		style := theme.CardStyle
		if genre == g.genre {
			style = theme.CardSelectedStyle
		}
		upstream := g.upstreams[genre]
		body := theme.CardTitleStyle.Render(genre.Title()) + "\n" +
			theme.CardSubtitleStyle.Render("→ "+upstream.Slug()) + "\n" +
			theme.MutedStyle.Render("press "+g.genreKey(genre))
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, style.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if g.selector != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.SubtitleStyle.Render("Where should your work go?"))
		b.WriteString("\n\n")
		b.WriteString(g.selector.View())
	}

	b.WriteString("\n\n")
	b.WriteString(theme.MutedStyle.Render(g.keys.Gate.Complete.Binding.Help().Key + " to continue"))
	return b.String()
}

func (g *GenreGate) genreKey(genre domain.Genre) string {
	if genre == domain.GenreTranslation {
		return g.keys.Gate.SelectTranslation.Binding.Help().Key
	}
	return g.keys.Gate.SelectOriginal.Binding.Help().Key
}
