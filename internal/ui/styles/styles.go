// Package styles provides shared color definitions for UI components.
//
// This package centralizes colors to keep the picker, prompts and
// progress components visually consistent.
package styles

import "charm.land/lipgloss/v2"

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for disabled/inactive text (gray)
	Muted = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal = lipgloss.Color("252")

	// Info is used for informational text (gray)
	Info = lipgloss.Color("244")
)
