package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the playground.
type Theme struct {
	// Backgrounds
	BgDark   lipgloss.Color // Deep background
	BgPanel  lipgloss.Color // Panel/box background
	BgAccent lipgloss.Color // Accent background (selection)

	// Text
	TextPrimary lipgloss.Color // Main text
	TextDim     lipgloss.Color // Secondary/dim text
	TextMuted   lipgloss.Color // Very dim text

	// Borders
	Border        lipgloss.Color // Default border
	BorderFocused lipgloss.Color // Focused/active border

	// Semantic colors
	Accent  lipgloss.Color // Primary accent (blue)
	Success lipgloss.Color // Success/positive (green)
	Warning lipgloss.Color // Warning/caution (amber)
	Error   lipgloss.Color // Error/danger (red/pink)
	Info    lipgloss.Color // Info/neutral (cyan)
	Purple  lipgloss.Color // Alternative accent

	// Status
	Running lipgloss.Color // Active animation
	Pending lipgloss.Color // Waiting state
}

// DefaultTheme is the dark Tokyo Night palette.
var DefaultTheme = Theme{
	// Backgrounds - deep blue-black tones
	BgDark:   lipgloss.Color("#1a1b26"),
	BgPanel:  lipgloss.Color("#24283b"),
	BgAccent: lipgloss.Color("#414868"),

	// Text - soft white to gray gradient
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	TextMuted:   lipgloss.Color("#414868"),

	// Borders
	Border:        lipgloss.Color("#414868"),
	BorderFocused: lipgloss.Color("#7aa2f7"),

	// Semantic colors
	Accent:  lipgloss.Color("#7aa2f7"), // Blue
	Success: lipgloss.Color("#9ece6a"), // Green
	Warning: lipgloss.Color("#e0af68"), // Amber
	Error:   lipgloss.Color("#f7768e"), // Red/Pink
	Info:    lipgloss.Color("#7dcfff"), // Cyan
	Purple:  lipgloss.Color("#bb9af7"), // Purple

	// Status
	Running: lipgloss.Color("#e0af68"), // Amber while a pulse runs
	Pending: lipgloss.Color("#565f89"), // Dim when idle
}

// MonoTheme is a grayscale palette for terminals without good color support.
var MonoTheme = Theme{
	BgDark:   lipgloss.Color("#000000"),
	BgPanel:  lipgloss.Color("#121212"),
	BgAccent: lipgloss.Color("#2a2a2a"),

	TextPrimary: lipgloss.Color("#e4e4e4"),
	TextDim:     lipgloss.Color("#8a8a8a"),
	TextMuted:   lipgloss.Color("#4e4e4e"),

	Border:        lipgloss.Color("#3a3a3a"),
	BorderFocused: lipgloss.Color("#bcbcbc"),

	Accent:  lipgloss.Color("#ffffff"),
	Success: lipgloss.Color("#d0d0d0"),
	Warning: lipgloss.Color("#9e9e9e"),
	Error:   lipgloss.Color("#eeeeee"),
	Info:    lipgloss.Color("#b2b2b2"),
	Purple:  lipgloss.Color("#c6c6c6"),

	Running: lipgloss.Color("#ffffff"),
	Pending: lipgloss.Color("#6c6c6c"),
}

// ThemeByName resolves a configured theme name. Unknown names fall back
// to the default palette.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme
	default:
		return DefaultTheme
	}
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Theme Theme

	// Base styles
	Base  lipgloss.Style
	Dim   lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Headers
	Title  lipgloss.Style
	Header lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Running lipgloss.Style

	// Interactive elements
	Selected   lipgloss.Style
	KeyBinding lipgloss.Style
	KeyHint    lipgloss.Style

	// Containers
	Box        lipgloss.Style
	BoxFocused lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputActive lipgloss.Style
	Placeholder lipgloss.Style

	// Progress
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	// Card faces
	CardFront lipgloss.Style
	CardBack  lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		// Base styles
		Base:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		Dim:   lipgloss.NewStyle().Foreground(t.TextDim),
		Muted: lipgloss.NewStyle().Foreground(t.TextMuted),
		Bold:  lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),

		// Headers
		Title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		// Status indicators
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
		Running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),

		// Interactive elements
		Selected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		KeyBinding: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.TextDim),

		// Containers
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		BoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused).
			Padding(0, 2),

		// Input
		Input: lipgloss.NewStyle().
			Foreground(t.TextPrimary),
		InputActive: lipgloss.NewStyle().
			Foreground(t.Accent),
		Placeholder: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		// Progress
		ProgressFilled: lipgloss.NewStyle().
			Foreground(t.Accent),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		// Card faces
		CardFront: lipgloss.NewStyle().
			Foreground(t.BgDark).
			Background(t.Accent).
			Bold(true).
			Padding(1, 5),
		CardBack: lipgloss.NewStyle().
			Foreground(t.BgDark).
			Background(t.Purple).
			Bold(true).
			Padding(1, 5),

		// Footer
		Footer: lipgloss.NewStyle().
			Foreground(t.TextDim),
	}
}

// DefaultStyles returns styles using the default theme.
var DefaultStyles = NewStyles(DefaultTheme)

// StatusIcon returns a colored status indicator.
func StatusIcon(status string, s Styles) string {
	switch status {
	case "success", "ok", "done", "completed":
		return s.Success.Render("●")
	case "error", "failed", "fail":
		return s.Error.Render("●")
	case "warning", "warn":
		return s.Warning.Render("●")
	case "running", "active":
		return s.Running.Render("●")
	case "pending", "waiting":
		return s.Dim.Render("○")
	default:
		return s.Dim.Render("○")
	}
}

// CheckIcon returns a styled check/cross icon.
func CheckIcon(checked bool, s Styles) string {
	if checked {
		return s.Success.Render("✓")
	}
	return s.Error.Render("✗")
}
