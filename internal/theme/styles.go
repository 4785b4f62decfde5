package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Step indicator styles
var (
	StepActiveStyle = lipgloss.NewStyle().
			Foreground(ColorStepActive).
			Bold(true).
			Underline(true)

	StepLockedStyle = lipgloss.NewStyle().
			Foreground(ColorStepLocked)

	StepOpenStyle = lipgloss.NewStyle().
			Foreground(ColorStepOpen)

	StepSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Card styles used by the genre and fork pickers
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCardBorder).
			Padding(0, 2).
			Width(34)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorCardSelected)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	CardSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Notice styles
var (
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorNotice).
			Padding(1, 3)

	NoticeTitleStyle = lipgloss.NewStyle().
				Foreground(ColorNotice).
				Bold(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorFilterCursor)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)
)
