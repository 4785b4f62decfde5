package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/ports"
	portsmocks "github.com/fosscope/toolkit/internal/ports/mocks"
	"github.com/fosscope/toolkit/internal/services"
)

func newTestHost(t *testing.T, account string) (*WorkflowHost, *portsmocks.MockForkService) {
	t.Helper()
	forks := portsmocks.NewMockForkService(t)
	keys := NewKeyMap(nil)
	host := NewWorkflowHost(
		domain.Session{AccountName: account},
		services.NewWorkflowService(forks, nil, nil),
		StageViewConfig{},
		NewNotice(),
		&keys,
	)
	return host, forks
}

func press(host *WorkflowHost, keys ...tea.KeyMsg) (*WorkflowHost, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		host, cmd = host.Update(k)
	}
	return host, cmd
}

// completeWithExisting walks the gate: genre key, use existing, enter
func completeWithExisting(t *testing.T, host *WorkflowHost, forks *portsmocks.MockForkService, genreKey string) *WorkflowHost {
	t.Helper()
	forks.EXPECT().SubmitForkSelection(mock.Anything, mock.Anything).
		Return(ports.ForkReceipt{ID: "r-1"}, nil).Once()
	host, _ = press(host, runeKey(genreKey), runeKey("x"), enterKey)
	require.False(t, host.notice.Active(), "unexpected notice: %v", host.notice.Err())
	return host
}

func TestWorkflowHost_StartsAtGate(t *testing.T) {
	host, _ := newTestHost(t, "alice")

	assert.True(t, host.Workflow().AtGate())
	assert.Nil(t, host.Stage())

	buttons := host.Workflow().Indicator()
	require.Len(t, buttons, 2)
	assert.Equal(t, "1. Choose genre", buttons[0].Title())
	assert.True(t, buttons[1].Locked)
}

func TestWorkflowHost_CompleteWithoutStrategyRaisesNotice(t *testing.T) {
	host, _ := newTestHost(t, "alice")

	host, _ = press(host, runeKey("O"), enterKey)

	assert.True(t, host.notice.Active())
	assert.ErrorIs(t, host.notice.Err(), domain.ErrNoForkStrategySelected)
	assert.Equal(t, 0, host.Workflow().Step())
	assert.Equal(t, domain.GenreOriginal, host.Gate().Genre(), "gate state is kept")
}

func TestWorkflowHost_NoticeSwallowsNextKey(t *testing.T) {
	host, _ := newTestHost(t, "alice")
	host, _ = press(host, enterKey)
	require.True(t, host.notice.Active())

	host, _ = press(host, runeKey("T"))

	assert.False(t, host.notice.Active())
	assert.Equal(t, domain.GenreUnselected, host.Gate().Genre(), "dismissing key does nothing else")
}

func TestWorkflowHost_CreateNewWithoutNameRaisesNotice(t *testing.T) {
	host, _ := newTestHost(t, "alice")

	host, _ = press(host, runeKey("T"), runeKey("n"), enterKey, enterKey)

	assert.ErrorIs(t, host.notice.Err(), domain.ErrNoRepositoryName)
	assert.True(t, host.Workflow().AtGate())
}

func TestWorkflowHost_OriginalFlow(t *testing.T) {
	host, forks := newTestHost(t, "alice")

	host = completeWithExisting(t, host, forks, "O")

	assert.Equal(t, 1, host.Workflow().Step())
	assert.Equal(t, domain.GenreOriginal, host.Workflow().Genre())
	require.NotNil(t, host.Stage())
	assert.Equal(t, domain.StageEdit, host.Stage().Stage().Kind)

	buttons := host.Workflow().Indicator()
	require.Len(t, buttons, 4)
	for _, b := range buttons[1:] {
		assert.False(t, b.Locked)
	}

	// Selecting any stage never re-validates: the fork mock allows one call only
	host, _ = press(host, runeKey("4"))
	assert.Equal(t, domain.StagePublish, host.Stage().Stage().Kind)
	host, _ = press(host, runeKey("3"))
	assert.Equal(t, domain.StageProofread, host.Stage().Stage().Kind)
	host, _ = press(host, runeKey("2"))
	assert.Equal(t, domain.StageEdit, host.Stage().Stage().Kind)
}

func TestWorkflowHost_ConfiguredContributorRepoIsSubmitted(t *testing.T) {
	forks := portsmocks.NewMockForkService(t)
	keys := NewKeyMap(nil)
	service := services.NewWorkflowService(forks, nil, map[domain.Genre]domain.RepoIdentity{
		domain.GenreTranslation: {Name: "tp"},
	})
	host := NewWorkflowHost(domain.Session{AccountName: "alice"}, service, StageViewConfig{}, NewNotice(), &keys)

	forks.EXPECT().SubmitForkSelection(mock.Anything, mock.MatchedBy(func(sel domain.ForkSelection) bool {
		return sel.Strategy == domain.ForkUseExisting &&
			sel.Repo == domain.RepoIdentity{Owner: "alice", Name: "tp"} &&
			sel.Upstream == domain.DefaultUpstreams[domain.GenreTranslation]
	})).Return(ports.ForkReceipt{ID: "r-1"}, nil).Once()

	host, _ = press(host, runeKey("T"), runeKey("x"), enterKey)

	require.False(t, host.notice.Active(), "unexpected notice: %v", host.notice.Err())
	assert.Equal(t, 1, host.Workflow().Step())
}

func TestWorkflowHost_TranslationSteps(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	host = completeWithExisting(t, host, forks, "T")

	want := []domain.StageKind{
		domain.StageChooseTitle,
		domain.StageTranslate,
		domain.StageProofread,
		domain.StagePublish,
	}
	for i, kind := range want {
		host.SelectStep(i + 1)
		assert.Equal(t, kind, host.Stage().Stage().Kind)
	}

	host, _ = press(host, runeKey("6"))
	assert.Equal(t, 4, host.Workflow().Step(), "out of range step is ignored")
}

func TestWorkflowHost_CreateNewFlow(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	repo := domain.RepoIdentity{Owner: "alice", Name: "essays"}
	forks.EXPECT().CreateRepository(mock.Anything, repo, domain.DefaultUpstreams[domain.GenreOriginal]).
		Return(ports.ForkReceipt{ID: "c-1", Repo: repo}, nil)
	forks.EXPECT().SubmitForkSelection(mock.Anything, mock.MatchedBy(func(sel domain.ForkSelection) bool {
		return sel.Repo == repo && sel.Strategy == domain.ForkCreateNew
	})).Return(ports.ForkReceipt{ID: "s-1"}, nil)

	host, _ = press(host, runeKey("O"), runeKey("n"))
	for _, r := range "essays" {
		host, _ = press(host, runeKey(string(r)))
	}
	host, _ = press(host, enterKey, enterKey)

	assert.False(t, host.notice.Active())
	assert.Equal(t, 1, host.Workflow().Step())
}

func TestWorkflowHost_BackendFailureKeepsGate(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	forks.EXPECT().SubmitForkSelection(mock.Anything, mock.Anything).
		Return(ports.ForkReceipt{}, errors.New("journal closed"))

	host, _ = press(host, runeKey("T"), runeKey("x"), enterKey)

	assert.True(t, host.notice.Active())
	assert.Contains(t, host.notice.Err().Error(), "journal closed")
	assert.True(t, host.Workflow().AtGate())
	assert.Equal(t, domain.GenreUnselected, host.Workflow().Genre())
}

func TestWorkflowHost_StepsLockedBeforeCompletion(t *testing.T) {
	host, _ := newTestHost(t, "alice")

	host, _ = press(host, runeKey("2"), runeKey("]"))

	assert.True(t, host.Workflow().AtGate())
}

func TestWorkflowHost_ResetShowsFreshGateKeepsGenre(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	host = completeWithExisting(t, host, forks, "O")
	host.SelectStep(2)

	host, _ = press(host, runeKey("1"))

	assert.True(t, host.Workflow().AtGate())
	assert.Nil(t, host.Stage())
	assert.Equal(t, domain.GenreUnselected, host.Gate().Genre(), "gate starts over")
	assert.Equal(t, domain.GenreOriginal, host.Workflow().Genre())

	buttons := host.Workflow().Indicator()
	assert.Len(t, buttons, 4, "indicator stays unlocked until the next completion")

	host, _ = press(host, runeKey("4"))
	assert.Equal(t, domain.StagePublish, host.Stage().Stage().Kind)
}

func TestWorkflowHost_NextPrevStayInBounds(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	host = completeWithExisting(t, host, forks, "O")

	host, _ = press(host, runeKey("]"), runeKey("]"), runeKey("]"), runeKey("]"))
	assert.Equal(t, 3, host.Workflow().Step())

	host, _ = press(host, runeKey("["), runeKey("["), runeKey("["))
	assert.Equal(t, 0, host.Workflow().Step())

	host, _ = press(host, runeKey("["))
	assert.Equal(t, 0, host.Workflow().Step())
}

func TestWorkflowHost_EditIdentityRequestsEdit(t *testing.T) {
	host, _ := newTestHost(t, "alice")

	_, cmd := press(host, runeKey("e"))

	require.NotNil(t, cmd)
	assert.Equal(t, RequestEditMsg{}, cmd())
}

func TestWorkflowHost_KeysGoToEditorWhileTyping(t *testing.T) {
	host, _ := newTestHost(t, "alice")
	host, _ = press(host, runeKey("O"), runeKey("n"))
	require.True(t, host.CapturesInput())

	host, _ = press(host, runeKey("e"), runeKey("2"))

	assert.True(t, host.Workflow().AtGate())
	host, _ = press(host, enterKey)
	assert.Equal(t, "e2", host.Gate().Repo().Name)
}

func TestWorkflowHost_PaletteMessages(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	host = completeWithExisting(t, host, forks, "T")

	host, _ = host.Update(NextStepMsg{})
	assert.Equal(t, 2, host.Workflow().Step())

	host, _ = host.Update(SelectStepMsg{Step: 0})
	assert.True(t, host.Workflow().AtGate())
}

func TestWorkflowHost_View(t *testing.T) {
	host, forks := newTestHost(t, "alice")
	assert.Contains(t, host.View(), "1. Choose genre")

	host = completeWithExisting(t, host, forks, "T")
	view := host.View()

	assert.Contains(t, view, "2. Choose title")
	assert.Contains(t, view, "5. Publish")
	assert.Contains(t, view, "Signed in as alice")
}

func TestWorkflowHost_DigitOnButtonSelectsIt(t *testing.T) {
	for _, genreKey := range []string{"O", "T"} {
		t.Run(genreKey, func(t *testing.T) {
			host, forks := newTestHost(t, "alice")
			host = completeWithExisting(t, host, forks, genreKey)

			buttons := host.Workflow().Indicator()
			// Walk backwards so the gate is pressed last
			for i := len(buttons) - 1; i >= 0; i-- {
				b := buttons[i]
				digit, _, found := strings.Cut(b.Title(), ".")
				require.True(t, found, "button %d has no number: %q", b.Index, b.Title())

				host, _ = press(host, runeKey(digit))

				assert.Equal(t, b.Index, host.Workflow().Step(), "pressing %s for %q", digit, b.Title())
			}
			assert.True(t, host.Workflow().AtGate())
		})
	}
}
