package picker

import (
	"charm.land/lipgloss/v2"

	"github.com/raphi011/gb/internal/ui/styles"
)

// Style functions that return styles based on the shared palette.

// BorderStyle wraps the entire picker (left border only)
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Primary).
		MarginTop(1).
		MarginBottom(1).
		PaddingLeft(2).
		PaddingRight(2)
}

// TitleStyle for the picker title
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// FilterLabelStyle for the "Branch:" label
func FilterLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// OptionSelectedStyle for the cursor-highlighted row
func OptionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

// OptionNormalStyle for regular rows
func OptionNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}

// MatchHighlightStyle for highlighting matched characters
func MatchHighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true).
		Underline(true)
}

// RemoteTagStyle for the "(remote)" annotation
func RemoteTagStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// StatusStyle for transient status messages (e.g. after copying)
func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Info).
		Italic(true)
}

// HelpStyle for help text at the bottom
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginTop(1)
}
