package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fosscope/toolkit/internal/config"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the contributor wizard (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the contributor wizard over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	keysConfig config.KeyBindingsConfig `kong:"-"`
	settings   *config.Settings         `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.toml > defaults.
	// A setting applies only while the flag is at its default and the env
	// var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TOOLKIT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TOOLKIT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Editors launched from the wizard append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TOOLKIT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TOOLKIT_DEBUG_FILE", logFilePath)
		}
	}

	if c.settings != nil && c.settings.Keys != nil {
		if err := ui.ValidateKeyBindings(c.settings.Keys); err != nil {
			return fmt.Errorf("invalid key bindings in settings.toml: %w", err)
		}
		c.keysConfig = c.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	return nil
}

// editor resolves the editor from the flag, then the settings file
func (c *CLI) editor(flag string) string {
	if flag != "" {
		return flag
	}
	if c.settings != nil {
		return c.settings.Editor
	}
	return ""
}
