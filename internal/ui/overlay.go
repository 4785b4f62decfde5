package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fosscope/toolkit/internal/theme"
)

var dimStyle = lipgloss.NewStyle().Foreground(theme.ColorVersion)

// dimBackground strips styling from background, dims it and pads it to
// fill width x height.
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		dimmed := dimStyle.Render(ansi.Strip(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// compositeOverlay renders an overlay centered on top of a dimmed background.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		if w := lipgloss.Width(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = dimStyle.Render(strings.Repeat(" ", startX)) + line +
			dimStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay renders an overlay full width at the bottom of a
// dimmed background.
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(len(bgLines)-len(overlayLines), 0)
	if height > 0 && height < len(bgLines) {
		startY = max(height-len(overlayLines), 0)
	}

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}
