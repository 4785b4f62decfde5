package domain

import "fmt"

// GateStep is the step index of the genre and fork selection.
const GateStep = 0

// Workflow is the navigation state machine of one contributor session.
//
// States are Gate (step 0) and Step(genre, 1..N). Completing the gate moves
// to step 1; afterwards any step of the genre can be selected directly and
// step 0 returns to the gate. There is no terminal state.
type Workflow struct {
	genre Genre
	step  int
}

// NewWorkflow returns a workflow sitting at the gate with no genre.
func NewWorkflow() *Workflow {
	return &Workflow{}
}

func (w *Workflow) Genre() Genre { return w.genre }

func (w *Workflow) Step() int { return w.step }

// AtGate reports whether the gate is showing.
func (w *Workflow) AtGate() bool { return w.step == GateStep }

// CompleteGate fixes the genre for this pass and moves to step 1. The
// caller must have validated the selection with ValidateSelection.
func (w *Workflow) CompleteGate(g Genre) error {
	if g == GenreUnselected {
		return ErrGenreNotSelected
	}
	w.genre = g
	w.step = 1
	return nil
}

// SelectStep moves to step directly. Step 0 returns to the gate; any other
// step must belong to the fixed genre's procedure.
func (w *Workflow) SelectStep(step int) error {
	if step == GateStep {
		w.Reset()
		return nil
	}
	if w.genre == GenreUnselected {
		return ErrStepLocked
	}
	if step < 1 || step > StepCount(w.genre) {
		return fmt.Errorf("step %d for %s: %w", step, w.genre, ErrStepLocked)
	}
	w.step = step
	return nil
}

// Reset returns to the gate. The genre stays fixed, and the indicator
// stays unlocked, until the gate completes again.
func (w *Workflow) Reset() {
	w.step = GateStep
}

// Current dispatches the current step.
func (w *Workflow) Current() Stage {
	return Dispatch(w.genre, w.step)
}

// StepButton is one entry of the step indicator.
type StepButton struct {
	Active bool
	Index  int
	Label  string
	Locked bool
}

// Title renders the 1-based label shown on the indicator.
func (b StepButton) Title() string {
	if b.Label == "" {
		return ""
	}
	return fmt.Sprintf("%d. %s", b.Index+1, b.Label)
}

// GateLabel is the label of the selection button.
const GateLabel = "Choose genre"

// Indicator returns the step buttons for the current genre: the selection
// button followed by either one locked placeholder or the genre's stages.
func (w *Workflow) Indicator() []StepButton {
	buttons := []StepButton{{Index: GateStep, Label: GateLabel, Active: w.step == GateStep}}
	if w.genre == GenreUnselected {
		return append(buttons, StepButton{Index: 1, Locked: true})
	}
	for i, kind := range Procedure(w.genre) {
		step := i + 1
		buttons = append(buttons, StepButton{Index: step, Label: kind.Label(), Active: w.step == step})
	}
	return buttons
}
