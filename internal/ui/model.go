package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fosscope/toolkit/internal/config"
	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/services"
	"github.com/fosscope/toolkit/internal/theme"
)

type uiState int

const (
	stateCredentials uiState = iota
	stateCommandPalette
	stateHelp
	stateWorkflow
)

// Model is the session shell: the credential screen first, then the
// workflow host, with help and the command palette on top.
type Model struct {
	commandPalette  *CommandPalette
	credentialsForm *Dialog
	devMode         bool
	entered         bool // credentials were saved at least once
	height          int
	helpScreen      *Dialog
	host            *WorkflowHost
	keys            KeyMap
	notice          *Notice
	sessionService  *services.SessionService
	stageCfg        StageViewConfig
	state           uiState
	width           int
	workflowService *services.WorkflowService
}

func NewModel(
	devMode bool,
	keysConfig config.KeyBindingsConfig,
	stageCfg StageViewConfig,
	sessionService *services.SessionService,
	workflowService *services.WorkflowService,
) *Model {
	m := &Model{
		devMode:         devMode,
		keys:            NewKeyMap(keysConfig),
		notice:          NewNotice(),
		sessionService:  sessionService,
		stageCfg:        stageCfg,
		state:           stateCredentials,
		workflowService: workflowService,
	}
	m.credentialsForm = m.newCredentialsDialog()
	return m
}

func (m *Model) newCredentialsDialog() *Dialog {
	return NewDialog("Sign in", NewCredentialsForm(m.sessionService), m.devMode)
}

func (m *Model) Init() tea.Cmd {
	return m.credentialsForm.Init()
}

// Session returns the current credentials
func (m *Model) Session() domain.Session {
	return m.sessionService.Session()
}

// Host returns the workflow host, nil before the first sign in
func (m *Model) Host() *WorkflowHost {
	return m.host
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch m.state {
	case stateCredentials:
		return m.updateCredentials(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateWorkflow:
		return m.updateWorkflow(msg)
	}
	return m, nil
}

func (m *Model) updateCredentials(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.notice.Update(msg) {
		return m, nil
	}

	updated, cmd := m.credentialsForm.Update(msg)
	m.credentialsForm = updated.(*Dialog)

	content, ok := m.credentialsForm.Content().(*CredentialsForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	result := content.Result()
	switch {
	case result.Cancelled && !m.entered:
		logging.Logger.Info("Credential screen cancelled before sign in, quitting")
		return m, tea.Quit
	case result.Cancelled:
		m.enterWorkflow()
		return m, nil
	case result.Error != nil:
		m.notice.Show(result.Error)
		m.credentialsForm = m.newCredentialsDialog()
		return m, m.credentialsForm.Init()
	}

	m.entered = true
	logging.Logger.Info("Credentials saved, starting workflow", "account", result.Session.AccountName)
	m.enterWorkflow()
	return m, nil
}

// enterWorkflow mounts a fresh host for the current session
func (m *Model) enterWorkflow() {
	m.host = NewWorkflowHost(m.sessionService.Session(), m.workflowService, m.stageCfg, m.notice, &m.keys)
	m.state = stateWorkflow
	m.credentialsForm = nil
}

func (m *Model) updateWorkflow(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit
	case ShowHelpMsg:
		return m.showHelp()
	case ShowCommandPaletteMsg:
		return m.showCommandPalette()
	case RequestEditMsg:
		m.credentialsForm = m.newCredentialsDialog()
		m.state = stateCredentials
		return m, m.credentialsForm.Init()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit.Binding) {
			return m, tea.Quit
		}
		if !m.notice.Active() && !m.host.CapturesInput() {
			switch {
			case key.Matches(msg, m.keys.Application.Quit.Binding):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Application.Help.Binding):
				return m.showHelp()
			case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
				return m.showCommandPalette()
			}
		}
	}

	var cmd tea.Cmd
	m.host, cmd = m.host.Update(msg)
	return m, cmd
}

func (m *Model) showHelp() (tea.Model, tea.Cmd) {
	m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
	m.state = stateHelp
	initCmd := m.helpScreen.Init()
	updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = updated.(*Dialog)
	return m, tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateWorkflow
		return m, nil
	}
	return m, cmd
}

func (m *Model) showCommandPalette() (tea.Model, tea.Cmd) {
	stepLabel := domain.GateLabel
	if stage := m.host.Workflow().Current(); stage.InRange() {
		stepLabel = stage.Kind.Label()
	}

	m.commandPalette = NewCommandPalette(NewActionDispatcher(m.host.ActionContext()), stepLabel, m.keys)
	m.state = stateCommandPalette
	initCmd := m.commandPalette.Init()
	_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.commandPalette = nil
	m.state = stateWorkflow
	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	actionMsg := NewActionDispatcher(m.host.ActionContext()).Dispatch(*result.Action)
	if actionMsg == nil {
		return m, nil
	}
	logging.Logger.Debug("Dispatching palette action", "action", result.Action.Name)
	return m.updateWorkflow(actionMsg)
}

func (m *Model) View() string {
	switch m.state {
	case stateCredentials:
		view := m.credentialsForm.View()
		if m.notice.Active() {
			return compositeOverlay(view, m.notice.View(), m.width, m.height)
		}
		return view
	case stateHelp:
		return m.helpScreen.View()
	case stateCommandPalette:
		return bottomAnchoredOverlay(m.workflowView(), m.commandPalette.View(), m.width, m.height)
	case stateWorkflow:
		view := m.workflowView()
		if m.notice.Active() {
			return compositeOverlay(view, m.notice.View(), m.width, m.height)
		}
		return view
	}
	return ""
}

func (m *Model) workflowView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")
	b.WriteString(m.host.View())
	b.WriteString("\n")
	b.WriteString(m.renderShortHelp())
	return b.String()
}

func (m *Model) renderShortHelp() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, " • "))
}
