package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Step indicator colors
const (
	ColorStepActive Color = "2"   // Green - current step
	ColorStepLocked Color = "238" // Dark gray - not reachable yet
	ColorStepOpen   Color = "250" // Default text - reachable
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorCardBorder   Color = "238" // Gray - unselected card border
	ColorCardSelected Color = "141" // Purple - selected card border
	ColorHelpGroup    Color = "141" // Purple
	ColorHintKey      Color = "226" // Yellow
	ColorNotice       Color = "214" // Orange - blocking notice border
)

// Command palette colors
const (
	ColorDimmed          Color = "240" // Dark gray - placeholders
	ColorFilterCursor    Color = "205" // Pink
	ColorPaletteSelected Color = "237" // Dark background - selected row
	ColorScrollIndicator Color = "243" // Gray - more items above/below
)
