package config

import (
	"os"
	"path/filepath"
)

// GetToolkitHome returns $TOOLKIT_HOME or ~/.fosscope-toolkit
func GetToolkitHome() string {
	home := os.Getenv("TOOLKIT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".fosscope-toolkit"
		}
		return filepath.Join(homeDir, ".fosscope-toolkit")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $TOOLKIT_HOME/settings.toml
func GetSettingsPath() string {
	return filepath.Join(GetToolkitHome(), "settings.toml")
}

// GetSSHDir returns $TOOLKIT_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetToolkitHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
