package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	DefaultWidth  = 100
	DefaultHeight = 34
	MinWidth      = 60
	MaxWidth      = 120

	SpacingTight  = 1
	SpacingNormal = 2
)

// Layout holds layout calculations for the current terminal size.
type Layout struct {
	Width  int
	Height int

	// Calculated regions
	ContentWidth int
	PanelWidth   int
}

// NewLayout creates a new layout for the given terminal size.
func NewLayout(width, height int) Layout {
	if width < MinWidth {
		width = MinWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}

	l := Layout{
		Width:  width,
		Height: height,
	}

	l.ContentWidth = width

	// Two panels per row with a gap between them
	l.PanelWidth = (l.ContentWidth - SpacingNormal) / 2

	return l
}

// JoinVertical joins strings vertically with the specified gap.
func JoinVertical(gap int, parts ...string) string {
	spacer := strings.Repeat("\n", gap)
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, spacer)
}

// JoinHorizontal joins strings horizontally with the specified gap.
func JoinHorizontal(gap int, parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	// Split each part into lines
	partLines := make([][]string, len(parts))
	maxLines := 0
	for i, p := range parts {
		partLines[i] = strings.Split(p, "\n")
		if len(partLines[i]) > maxLines {
			maxLines = len(partLines[i])
		}
	}

	// Calculate widths
	widths := make([]int, len(parts))
	for i, lines := range partLines {
		for _, line := range lines {
			w := lipgloss.Width(line)
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Build output
	spacer := strings.Repeat(" ", gap)
	var result strings.Builder
	for lineNum := 0; lineNum < maxLines; lineNum++ {
		for i, lines := range partLines {
			line := ""
			if lineNum < len(lines) {
				line = lines[lineNum]
			}
			// Pad to width
			lineWidth := lipgloss.Width(line)
			if lineWidth < widths[i] {
				line += strings.Repeat(" ", widths[i]-lineWidth)
			}
			result.WriteString(line)
			if i < len(parts)-1 {
				result.WriteString(spacer)
			}
		}
		if lineNum < maxLines-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// Center centers text within the given width.
func Center(text string, width int) string {
	lines := strings.Split(text, "\n")
	var result []string
	for _, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			result = append(result, line)
			continue
		}
		padding := (width - lineWidth) / 2
		result = append(result, strings.Repeat(" ", padding)+line)
	}
	return strings.Join(result, "\n")
}

// Truncate truncates text to fit within width, adding ellipsis if needed.
func Truncate(text string, width int) string {
	if width < 4 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	// Find truncation point
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "..."
		if lipgloss.Width(truncated) <= width {
			return truncated
		}
	}
	return "..."
}

