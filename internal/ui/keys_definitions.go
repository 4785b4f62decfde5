package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/config"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"ctrl+p"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Workflow keys
	{Name: "edit_identity", Defaults: []string{"e"}, Help: "edit account and tokens", IsPaletteAction: true, Msg: RequestEditMsg{}, TipFormat: "press %s to change your account or tokens"},
	{Name: "jump_step", Defaults: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Help: "jump to the numbered step (1=choose genre)", TipFormat: "press %s to go back to the genre selection"},
	{Name: "next_step", Defaults: []string{"]", "right"}, Help: "next step", IsPaletteAction: true, Msg: NextStepMsg{}},
	{Name: "prev_step", Defaults: []string{"[", "left"}, Help: "previous step", IsPaletteAction: true, Msg: PrevStepMsg{}},
	{Name: "reset_gate", Defaults: []string{"g"}, Help: "back to genre selection", IsPaletteAction: true, Msg: SelectStepMsg{Step: 0}},

	// Gate keys
	{Name: "complete_gate", Defaults: []string{"enter"}, Help: "confirm genre and fork"},
	{Name: "create_new_fork", Defaults: []string{"n"}, Help: "create a new repository"},
	{Name: "select_original", Defaults: []string{"O"}, Help: "choose original article"},
	{Name: "select_translation", Defaults: []string{"T"}, Help: "choose translation"},
	{Name: "use_existing_fork", Defaults: []string{"x"}, Help: "use my existing fork", TipFormat: "press %s to reuse the fork you already have"},

	// Repository editor keys
	{Name: "change_repo", Defaults: []string{"c"}, Help: "change repository owner and name"},
	{Name: "leave_repo", Defaults: []string{"esc"}, Help: "stop editing the repository"},
	{Name: "next_field", Defaults: []string{"tab", "shift+tab"}, Help: "switch between owner and name"},
	{Name: "save_repo", Defaults: []string{"enter"}, Help: "save repository"},

	// Stage keys
	{Name: "open_draft", Defaults: []string{"o"}, Help: "open draft in editor", IsPaletteAction: true, Msg: OpenDraftMsg{}, TipFormat: "press %s to open your draft in the editor"},
}

// Repository editor keys only act while the editor has focus, and gate keys
// never do, so the two groups may reuse each other's keys.
var (
	editorKeyNames = map[string]bool{"leave_repo": true, "next_field": true, "save_repo": true}
	gateKeyNames   = map[string]bool{
		"change_repo":        true,
		"complete_gate":      true,
		"create_new_fork":    true,
		"select_original":    true,
		"select_translation": true,
		"use_existing_fork":  true,
	}
)

func keysMayShare(a, b string) bool {
	return (editorKeyNames[a] && gateKeyNames[b]) || (gateKeyNames[a] && editorKeyNames[b])
}

// ValidateKeyBindings checks custom bindings against every other binding,
// overridden or default.
func ValidateKeyBindings(custom config.KeyBindingsConfig) error {
	return custom.Validate(GetDefaultKeyBindings(), keysMayShare)
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
