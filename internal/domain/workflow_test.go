package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_StartsAtGate(t *testing.T) {
	w := NewWorkflow()
	assert.True(t, w.AtGate())
	assert.Equal(t, GenreUnselected, w.Genre())
	assert.False(t, w.Current().InRange())
}

func TestWorkflow_IndicatorLockedBeforeGate(t *testing.T) {
	buttons := NewWorkflow().Indicator()

	require.Len(t, buttons, 2)
	assert.Equal(t, "1. Choose genre", buttons[0].Title())
	assert.False(t, buttons[0].Locked)
	assert.True(t, buttons[0].Active)
	assert.True(t, buttons[1].Locked)
	assert.Empty(t, buttons[1].Title())
}

func TestWorkflow_StepsLockedBeforeGate(t *testing.T) {
	w := NewWorkflow()
	assert.ErrorIs(t, w.SelectStep(1), ErrStepLocked)
	assert.Equal(t, 0, w.Step())
}

func TestWorkflow_CompleteGateRequiresGenre(t *testing.T) {
	w := NewWorkflow()
	assert.ErrorIs(t, w.CompleteGate(GenreUnselected), ErrGenreNotSelected)
	assert.True(t, w.AtGate())
}

func TestWorkflow_OriginalIndicator(t *testing.T) {
	w := NewWorkflow()
	require.NoError(t, w.CompleteGate(GenreOriginal))

	buttons := w.Indicator()
	require.Len(t, buttons, 4, "selection button plus 3 stages")
	assert.Equal(t, []string{"1. Choose genre", "2. Edit article", "3. Proofread", "4. Publish"},
		[]string{buttons[0].Title(), buttons[1].Title(), buttons[2].Title(), buttons[3].Title()})
	for _, b := range buttons[1:] {
		assert.False(t, b.Locked)
	}
	assert.True(t, buttons[1].Active)
}

func TestWorkflow_FreeNavigationAfterGate(t *testing.T) {
	w := NewWorkflow()
	require.NoError(t, w.CompleteGate(GenreOriginal))

	for _, step := range []int{3, 1, 2, 3, 2} {
		require.NoError(t, w.SelectStep(step))
		assert.Equal(t, step, w.Step())
		assert.Equal(t, GenreOriginal, w.Genre())
	}
	assert.ErrorIs(t, w.SelectStep(4), ErrStepLocked)
	assert.Equal(t, 2, w.Step())
}

func TestWorkflow_TranslationStages(t *testing.T) {
	w := NewWorkflow()
	require.NoError(t, w.CompleteGate(GenreTranslation))

	kinds := []StageKind{StageChooseTitle, StageTranslate, StageProofread, StagePublish}
	for i, kind := range kinds {
		require.NoError(t, w.SelectStep(i+1))
		assert.Equal(t, kind, w.Current().Kind)
	}
	assert.Len(t, w.Indicator(), 5)
}

func TestWorkflow_ResetKeepsGenre(t *testing.T) {
	w := NewWorkflow()
	require.NoError(t, w.CompleteGate(GenreTranslation))
	require.NoError(t, w.SelectStep(GateStep))

	assert.True(t, w.AtGate())
	assert.Equal(t, GenreTranslation, w.Genre())
	assert.Len(t, w.Indicator(), 5)

	require.NoError(t, w.CompleteGate(GenreOriginal))
	assert.Equal(t, GenreOriginal, w.Genre())
	assert.Equal(t, 1, w.Step())
}
