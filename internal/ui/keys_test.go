package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosscope/toolkit/internal/config"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, update func(tea.Msg), text string) {
	t.Helper()
	for _, r := range text {
		update(runeKey(string(r)))
	}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.True(t, key.Matches(runeKey("e"), keys.Workflow.EditIdentity.Binding))
	assert.True(t, key.Matches(runeKey("]"), keys.Workflow.NextStep.Binding))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, keys.Workflow.NextStep.Binding))
	assert.True(t, key.Matches(runeKey("1"), keys.Workflow.JumpStep.Binding))
	assert.False(t, key.Matches(runeKey("0"), keys.Workflow.JumpStep.Binding))
	assert.True(t, key.Matches(enterKey, keys.Gate.Complete.Binding))
}

func TestNewKeyMap_CustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"edit_identity": {"E"},
		"help":          {"f1", "H"},
	})

	assert.True(t, key.Matches(runeKey("E"), keys.Workflow.EditIdentity.Binding))
	assert.False(t, key.Matches(runeKey("e"), keys.Workflow.EditIdentity.Binding))
	assert.Equal(t, "f1/H", keys.Application.Help.Binding.Help().Key)

	binding, ok := keys.Binding("help")
	require.True(t, ok)
	assert.Equal(t, []string{"f1", "H"}, binding.Keys())
}

func TestNewKeyMap_TipUsesConfiguredKey(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"edit_identity": {"E"}})

	require.NotNil(t, keys.Workflow.EditIdentity.Tip)
	assert.Equal(t, "press E to change your account or tokens", keys.Workflow.EditIdentity.Tip.Text())
}

func TestBuildBinding_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		buildBinding("does_not_exist", nil)
	})
}

func TestGetValidKeyNames_SortedAndComplete(t *testing.T) {
	names := GetValidKeyNames()

	assert.Len(t, names, len(AllKeyDefinitions))
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "edit_identity")
	assert.Contains(t, names, "open_draft")
}

func TestSettingsExampleKeysAreValid(t *testing.T) {
	example := config.KeyBindingsConfig{"help": {"?"}, "edit_identity": {"e"}}

	assert.NoError(t, ValidateKeyBindings(example))
}

func TestValidateKeyBindings(t *testing.T) {
	tests := []struct {
		name    string
		custom  config.KeyBindingsConfig
		wantErr string
	}{
		{name: "defaults only", custom: nil},
		{name: "free key", custom: config.KeyBindingsConfig{"quit": {"ctrl+q"}}},
		{name: "quit on use existing fork", custom: config.KeyBindingsConfig{"quit": {"x"}}, wantErr: "key 'x' is assigned to both 'quit' and 'use_existing_fork'"},
		{name: "help on a step number", custom: config.KeyBindingsConfig{"help": {"3"}}, wantErr: "assigned to both"},
		{name: "save shares complete", custom: config.KeyBindingsConfig{"save_repo": {"ctrl+s"}, "complete_gate": {"ctrl+s"}}},
		{name: "save on a workflow key", custom: config.KeyBindingsConfig{"save_repo": {"g"}}, wantErr: "assigned to both"},
		{name: "force quit on leave", custom: config.KeyBindingsConfig{"force_quit": {"esc"}}, wantErr: "assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyBindings(tt.custom)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetPaletteActions_AllDispatchable(t *testing.T) {
	for _, def := range GetPaletteActions() {
		assert.NotNil(t, def.Msg, "palette action %s has no message", def.Name)
	}
}
