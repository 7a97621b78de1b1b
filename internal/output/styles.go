package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cartkit/bundle-expander/internal/bundle"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: cart line and merchandise ids.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for expanded lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for lines skipped because of bad bundle data.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (cart line ids, merchandise ids).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleFailure styles failure messages.
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// ReasonStyle returns the style for a line decision.
func ReasonStyle(r bundle.Reason) lipgloss.Style {
	switch r {
	case bundle.ReasonExpanded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case bundle.ReasonMalformed, bundle.ReasonEmptyBundle:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle().Faint(true)
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	return StyleFailure.Render("✘") + " " + msg
}
