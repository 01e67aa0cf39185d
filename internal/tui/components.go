package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionBox renders a titled box with content.
//
//	╭─ TITLE ──────────────────────────╮
//	│  content line 1                  │
//	│  content line 2                  │
//	╰──────────────────────────────────╯
func SectionBox(title, content string, width int, s Styles) string {
	if width < 20 {
		width = 60
	}

	// Build title bar: ─ TITLE ──────
	titleText := " " + title + " "
	titleLen := lipgloss.Width(titleText)
	remainingWidth := width - 4 - titleLen // 4 for corners and initial dash
	if remainingWidth < 0 {
		remainingWidth = 0
	}

	titleBar := "─" + s.Header.Render(titleText) + strings.Repeat("─", remainingWidth)

	// Apply box style
	box := lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:         "",
			Bottom:      "─",
			Left:        "│",
			Right:       "│",
			TopLeft:     "╭",
			TopRight:    "╮",
			BottomLeft:  "╰",
			BottomRight: "╯",
		}).
		BorderForeground(s.Theme.Border).
		Width(width - 2). // Account for border
		Padding(0, 1)

	// Build the full box manually for the custom top border
	contentBox := box.Render(content)
	lines := strings.Split(contentBox, "\n")

	// Replace first line with our custom title bar
	var result strings.Builder
	result.WriteString("╭" + titleBar + "╮\n")
	for i := 1; i < len(lines); i++ {
		result.WriteString(lines[i])
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// ProgressBar renders a progress bar.
//
//	pulse ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━ 67%
func ProgressBar(label string, percent int, width int, s Styles) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	// Reserve space for label and percentage
	labelWidth := lipgloss.Width(label)
	percentStr := fmt.Sprintf("%3d%%", percent)
	barWidth := width - labelWidth - len(percentStr) - 2 // 2 for spacing
	if barWidth < 10 {
		barWidth = 10
	}

	filled := (barWidth * percent) / 100
	empty := barWidth - filled

	bar := s.ProgressFilled.Render(strings.Repeat("━", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("━", empty))

	return label + " " + bar + " " + s.Dim.Render(percentStr)
}

// StatusBadge renders a colored status indicator with label.
//
//	● running
func StatusBadge(status, label string, s Styles) string {
	icon := StatusIcon(status, s)
	var style lipgloss.Style
	switch status {
	case "success", "ok", "done", "completed":
		style = s.Success
	case "error", "failed", "fail":
		style = s.Error
	case "warning", "warn":
		style = s.Warning
	case "running", "active":
		style = s.Running
	default:
		style = s.Dim
	}
	return icon + " " + style.Render(label)
}

// KeyHints renders a row of keyboard shortcuts.
//
//	[r] run  [f] flip  [q] quit
func KeyHints(hints []KeyHint, s Styles) string {
	var parts []string
	for _, h := range hints {
		key := s.KeyBinding.Render("[" + h.Key + "]")
		label := s.KeyHint.Render(h.Label)
		parts = append(parts, key+" "+label)
	}
	return strings.Join(parts, "  ")
}

// KeyHint represents a keyboard shortcut hint.
type KeyHint struct {
	Key   string
	Label string
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
