package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct{}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Command builds the editor process for path without starting it.
// Priority: editor → $TOOLKIT_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Command(path string, editor string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("no draft path configured")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("draft does not exist: %w", err)
	}

	name, args := findEditor(path, editor)
	if name == "" {
		return nil, fmt.Errorf("no suitable editor found. Set --editor, $TOOLKIT_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", name, "path", path)
	return exec.Command(name, args...), nil
}

func findEditor(path string, editor string) (string, []string) {
	if editor != "" {
		return editor, []string{path}
	}

	for _, env := range []string{"TOOLKIT_EDITOR", "VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e, []string{path}
		}
	}

	return findPlatformEditor(path)
}
