package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fosscope/toolkit/internal/config"
)

// ApplicationKeys are available on every screen that does not capture text
type ApplicationKeys struct {
	CommandPalette KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	Quit           KeyWithTip
}

// WorkflowKeys drive the step indicator
type WorkflowKeys struct {
	EditIdentity KeyWithTip
	JumpStep     KeyWithTip
	NextStep     KeyWithTip
	PrevStep     KeyWithTip
	ResetGate    KeyWithTip
}

// GateKeys choose the genre and fork
type GateKeys struct {
	Complete          KeyWithTip
	CreateNew         KeyWithTip
	SelectOriginal    KeyWithTip
	SelectTranslation KeyWithTip
	UseExisting       KeyWithTip
}

// RepoEditorKeys edit the repository identity
type RepoEditorKeys struct {
	Change    KeyWithTip
	Leave     KeyWithTip
	NextField KeyWithTip
	Save      KeyWithTip
}

// StageKeys act on the current stage
type StageKeys struct {
	OpenDraft KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Gate        GateKeys
	RepoEditor  RepoEditorKeys
	Stage       StageKeys
	Workflow    WorkflowKeys

	byName map[string]key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	byName := make(map[string]key.Binding, len(AllKeyDefinitions))
	build := func(name string) KeyWithTip {
		kt := buildBinding(name, keysConfig)
		byName[name] = kt.Binding
		return kt
	}

	return KeyMap{
		byName: byName,
		Application: ApplicationKeys{
			CommandPalette: build("command_palette"),
			ForceQuit:      build("force_quit"),
			Help:           build("help"),
			Quit:           build("quit"),
		},
		Gate: GateKeys{
			Complete:          build("complete_gate"),
			CreateNew:         build("create_new_fork"),
			SelectOriginal:    build("select_original"),
			SelectTranslation: build("select_translation"),
			UseExisting:       build("use_existing_fork"),
		},
		RepoEditor: RepoEditorKeys{
			Change:    build("change_repo"),
			Leave:     build("leave_repo"),
			NextField: build("next_field"),
			Save:      build("save_repo"),
		},
		Stage: StageKeys{
			OpenDraft: build("open_draft"),
		},
		Workflow: WorkflowKeys{
			EditIdentity: build("edit_identity"),
			JumpStep:     build("jump_step"),
			NextStep:     build("next_step"),
			PrevStep:     build("prev_step"),
			ResetGate:    build("reset_gate"),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Workflow.PrevStep.Binding,
		k.Workflow.NextStep.Binding,
		k.Workflow.EditIdentity.Binding,
		k.Application.CommandPalette.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns every binding tip in definition order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, kt := range []KeyWithTip{
		k.Application.CommandPalette,
		k.Application.Help,
		k.Workflow.EditIdentity,
		k.Workflow.JumpStep,
		k.Gate.UseExisting,
		k.Stage.OpenDraft,
	} {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}

// Binding returns the binding of a key definition by name
func (k KeyMap) Binding(name string) (key.Binding, bool) {
	b, ok := k.byName[name]
	return b, ok
}
