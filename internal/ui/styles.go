package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for modal components
var (
	// Primary colors
	PrimaryColor  = lipgloss.Color("#7D56F4") // Purple - dialog borders, titles
	WarningColor  = lipgloss.Color("#FFA500") // Orange - confirmations
	MutedColor    = lipgloss.Color("#626262") // Gray - descriptions, hints
	TextColor     = lipgloss.Color("#FFFFFF") // White - main content
	BackdropColor = lipgloss.Color("#3A3A3A") // Dark gray - dimmed background
)

// Layout constants
const (
	MinTerminalWidth   = 40  // Minimum supported terminal width
	MaxContentWidth    = 100 // Maximum content width before capping
	DefaultHeight      = 24  // Fallback terminal height
	DefaultDialogWidth = 50  // Dialog width when the frame allows it
	DefaultPadding     = 2   // Default padding inside boxes
	BackdropChar       = "░" // Fill for the backdrop when nothing is underneath
)

// Shared styles for modal components
var (
	// DialogTitleStyle is for the dialog title line
	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// DialogDescriptionStyle is for the optional line under the title
	DialogDescriptionStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// DialogBodyStyle is for children content
	DialogBodyStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// DialogHintStyle is for the key hint at the bottom of a dialog
	DialogHintStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// BackdropStyle dims whatever is behind an open modal
	BackdropStyle = lipgloss.NewStyle().
			Foreground(BackdropColor)

	// FocusedStyle marks the focused element inside a dialog
	FocusedStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// UnfocusedStyle marks a focusable element that is not focused
	UnfocusedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)
)

// DialogBoxStyle returns the border style for dialog surfaces
func DialogBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2). // Account for border characters
		Padding(1, DefaultPadding)
}

// DialogWidth picks a dialog width that fits the frame.
func DialogWidth(frameWidth int) int {
	if frameWidth <= 0 {
		return DefaultDialogWidth
	}
	if frameWidth < DefaultDialogWidth+4 {
		return max(frameWidth-4, 10)
	}
	return DefaultDialogWidth
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, DefaultHeight // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	result := ""
	for i := 0; i < width; i++ {
		result += char
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(result)
}
