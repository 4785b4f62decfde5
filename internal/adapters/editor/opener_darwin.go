//go:build darwin

package editor

import "os/exec"

var defaultEditors = []string{
	"nano",
	"vim",
	"code",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}
	// TextEdit is always there
	return "open", []string{"-e", path}
}
