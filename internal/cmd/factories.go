package cmd

import (
	adaptereditor "github.com/fosscope/toolkit/internal/adapters/editor"
	"github.com/fosscope/toolkit/internal/adapters/local"
	"github.com/fosscope/toolkit/internal/config"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/services"
	"github.com/fosscope/toolkit/internal/ui"
)

// Container holds the dependencies of one wizard session
type Container struct {
	SessionService  *services.SessionService
	StageConfig     ui.StageViewConfig
	WorkflowService *services.WorkflowService

	// Internal - for cleanup only
	backend *local.Backend
}

// NewContainer wires a fresh backend and services. Every session gets its
// own container, so credentials are never shared between sessions.
func NewContainer(settings *config.Settings, editor string) (*Container, error) {
	backend, err := local.NewBackend()
	if err != nil {
		return nil, err
	}

	var draftPath string
	if settings != nil {
		draftPath = settings.DraftPath
	}

	container := &Container{
		SessionService:  services.NewSessionService(backend),
		WorkflowService: services.NewWorkflowService(backend, settings.UpstreamMap(), settings.ContributorRepoMap()),
		StageConfig: ui.StageViewConfig{
			DraftPath: draftPath,
			Editor:    editor,
			Opener:    adaptereditor.NewOpener(),
		},
		backend: backend,
	}
	logging.Logger.Debug("Container created", "draft_path", draftPath, "editor", editor)
	return container, nil
}

// NewModel builds the UI model of the session
func (c *Container) NewModel(devMode bool, keysConfig config.KeyBindingsConfig) *ui.Model {
	return ui.NewModel(devMode, keysConfig, c.StageConfig, c.SessionService, c.WorkflowService)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.backend != nil {
		return c.backend.Close()
	}
	return nil
}
