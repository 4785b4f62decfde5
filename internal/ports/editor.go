package ports

import "os/exec"

// EditorOpener prepares an external editor for a draft
type EditorOpener interface {
	// Command returns the editor process for path without starting it.
	// editor is the configured editor and takes precedence over the environment.
	Command(path string, editor string) (*exec.Cmd, error)
}
