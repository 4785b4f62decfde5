package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 4
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth and limits it to
// maxErrorLines, truncating with "..." when it does not fit.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return "unknown error"
	}

	if maxWidth < 10 {
		maxWidth = 10
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return message
	}

	var lines []string
	var current strings.Builder
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(current.String())

		if currentLen > 0 && currentLen+1+wordLen > maxWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) >= maxErrorLines {
				truncated = true
				break
			}
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return strings.Join(lines, "\n")
}
