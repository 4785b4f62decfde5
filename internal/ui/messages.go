package ui

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// RequestEditMsg asks the shell to show the credential screen again
type RequestEditMsg struct{}

// SelectStepMsg requests moving the workflow to a step (0 is the gate)
type SelectStepMsg struct {
	Step int
}

// NextStepMsg requests moving to the next unlocked step
type NextStepMsg struct{}

// PrevStepMsg requests moving to the previous unlocked step
type PrevStepMsg struct{}

// OpenDraftMsg requests opening the draft of the current stage in the editor
type OpenDraftMsg struct{}

// editorFinishedMsg is sent when the external editor exits
type editorFinishedMsg struct {
	err error
}

// showNoticeMsg raises the blocking notice for err
type showNoticeMsg struct {
	err error
}
