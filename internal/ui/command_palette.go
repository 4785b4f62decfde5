package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/fosscope/toolkit/internal/theme"
)

// maxVisibleItems is the maximum number of actions shown at once
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	Completed     bool
	Result        CommandPaletteResult
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition // Actions available in the current context
	filterInput   textinput.Model
	keys          KeyMap
	lastQuery     string
	selectedIndex int
	stepLabel     string // Current step, shown in the header
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a palette listing the actions dispatcher allows
func NewCommandPalette(dispatcher *ActionDispatcher, stepLabel string, keys KeyMap) *CommandPalette {
	var actions []KeyDefinition
	for _, def := range GetPaletteActions() {
		if dispatcher.Available(def) {
			actions = append(actions, def)
		}
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		keys:        keys,
		stepLabel:   stepLabel,
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc || key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the command palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.stepLabel != "" {
		header += " " + theme.DimmedStyle.Render("(current step: "+cp.stepLabel+")")
	}

	var items []string
	maxHelpLen := cp.maxHelpLen()
	start, end := cp.visibleRange()

	for i := start; i < end; i++ {
		def := cp.actions[i]
		helpText := padRight(capitalizeFirst(def.Help), maxHelpLen)

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(cp.actions):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		itemStyle := theme.PaletteItemStyle
		if i == cp.selectedIndex {
			itemStyle = theme.PaletteItemSelectedStyle
		}
		items = append(items, prefix+itemStyle.Render(helpText)+theme.PaletteShortcutStyle.Render("  "+cp.shortcut(def)))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")

	width := cp.width
	if width <= 0 {
		width = 80
	}
	return theme.PaletteBorderStyle.Width(width - 2).Render(inner)
}

// shortcut returns the first configured key of an action
func (cp *CommandPalette) shortcut(def KeyDefinition) string {
	if b, ok := cp.keys.Binding(def.Name); ok && len(b.Keys()) > 0 {
		return b.Keys()[0]
	}
	if len(def.Defaults) > 0 {
		return def.Defaults[0]
	}
	return ""
}

// filterActions fuzzy-filters the action list by help text, best match first.
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.actions = cp.allActions
		return
	}

	helps := make([]string, len(cp.allActions))
	for i, def := range cp.allActions {
		helps[i] = strings.ToLower(def.Help)
	}

	matches := fuzzy.Find(query, helps)
	filtered := make([]KeyDefinition, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, cp.allActions[m.Index])
	}
	cp.actions = filtered
}

// maxHelpLen returns the maximum help text length for alignment.
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

// visibleRange returns the start and end indices for visible items.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

// padRight pads a string to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// capitalizeFirst returns the string with the first letter uppercased.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
