package ui

import (
	"strings"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/theme"
)

const lockedStepLabel = "…"

// renderStepIndicator renders the step buttons of the workflow on one line
func renderStepIndicator(buttons []domain.StepButton) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		switch {
		case b.Locked:
			parts = append(parts, theme.StepLockedStyle.Render(lockedStepLabel))
		case b.Active:
			parts = append(parts, theme.StepActiveStyle.Render(b.Title()))
		default:
			parts = append(parts, theme.StepOpenStyle.Render(b.Title()))
		}
	}
	return strings.Join(parts, theme.StepSeparatorStyle.Render("  ›  "))
}
