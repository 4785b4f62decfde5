package ui

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosscope/toolkit/internal/domain"
	portsmocks "github.com/fosscope/toolkit/internal/ports/mocks"
)

func newTestStage(t *testing.T, stage domain.Stage) (*StageView, *portsmocks.MockEditorOpener) {
	t.Helper()
	opener := portsmocks.NewMockEditorOpener(t)
	keys := NewKeyMap(nil)
	cfg := StageViewConfig{DraftPath: "/drafts/article.md", Editor: "vim", Opener: opener}
	return NewStageView(stage, cfg, &keys), opener
}

func TestStageView_OutOfRangeRendersNothing(t *testing.T) {
	view, _ := newTestStage(t, domain.Dispatch(domain.GenreTranslation, 0))

	assert.Empty(t, view.View())
}

func TestStageView_RendersTitle(t *testing.T) {
	view, _ := newTestStage(t, domain.Dispatch(domain.GenreTranslation, 2))

	out := view.View()

	assert.Contains(t, out, "Step 2: Translate")
	assert.Contains(t, out, "/drafts/article.md")
}

func TestStageView_NoDraftActionOnProofread(t *testing.T) {
	view, _ := newTestStage(t, domain.Dispatch(domain.GenreOriginal, 2))

	_, cmd := view.Update(runeKey("o"))

	assert.Nil(t, cmd)
	assert.NotContains(t, view.View(), "Draft:")
}

func TestStageView_OpenDraftRunsEditor(t *testing.T) {
	view, opener := newTestStage(t, domain.Dispatch(domain.GenreOriginal, 1))
	opener.EXPECT().Command("/drafts/article.md", "vim").Return(exec.Command("true"), nil)

	_, cmd := view.Update(runeKey("o"))

	assert.NotNil(t, cmd)
}

func TestStageView_OpenDraftErrorRaisesNotice(t *testing.T) {
	view, opener := newTestStage(t, domain.Dispatch(domain.GenreTranslation, 2))
	opener.EXPECT().Command("/drafts/article.md", "vim").Return(nil, errors.New("no draft path configured"))

	_, cmd := view.Update(OpenDraftMsg{})

	require.NotNil(t, cmd)
	msg, ok := cmd().(showNoticeMsg)
	require.True(t, ok)
	assert.Contains(t, msg.err.Error(), "failed to open editor")
	assert.Contains(t, msg.err.Error(), "no draft path configured")
}
