//go:build !linux && !darwin && !windows

package editor

import "os/exec"

func findPlatformEditor(path string) (string, []string) {
	if _, err := exec.LookPath("vi"); err == nil {
		return "vi", []string{path}
	}
	return "", nil
}
