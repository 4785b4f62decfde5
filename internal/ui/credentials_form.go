package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/services"
)

// CredentialsFormResult contains the result of the credential screen
type CredentialsFormResult struct {
	Cancelled bool
	Error     error
	Session   domain.Session
}

// CredentialsForm asks for the account name and the two secrets. Every
// field is optional: leaving it empty keeps the current value, which is
// shown as the placeholder.
type CredentialsForm struct {
	Completed      bool
	form           *huh.Form
	result         CredentialsFormResult
	sessionService *services.SessionService
	update         domain.CredentialUpdate
}

// NewCredentialsForm creates the credential screen for the current session
func NewCredentialsForm(sessionService *services.SessionService) *CredentialsForm {
	current := sessionService.Session()
	cf := &CredentialsForm{
		sessionService: sessionService,
	}

	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account name").
				Description("Your GitHub account").
				Placeholder(current.AccountName).
				Value(&cf.update.AccountName),
			huh.NewInput().
				Title("Access token").
				Description("Personal access token used to fork and submit").
				Placeholder(current.MaskedToken()).
				EchoMode(huh.EchoModePassword).
				Value(&cf.update.AccessToken),
			huh.NewInput().
				Title("Assistant API key").
				Description("Optional, used by the translation assistant").
				Placeholder(current.MaskedAssistantKey()).
				EchoMode(huh.EchoModePassword).
				Value(&cf.update.AssistantKey),
		),
	)

	return cf
}

func (cf *CredentialsForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CredentialsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.result.Cancelled = true
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		session, err := cf.sessionService.Save(context.Background(), cf.update)
		if err != nil {
			logging.Logger.Error("Failed to save credentials", "error", err)
			cf.result.Error = err
		}
		cf.result.Session = session
		return cf, nil
	}

	return cf, cmd
}

func (cf *CredentialsForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *CredentialsForm) Result() CredentialsFormResult {
	return cf.result
}
