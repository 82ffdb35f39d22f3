// Package style provides a functional API for composing and applying lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tmdb-cli/tmdb/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Standard text transformations.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Heading renders a bold listing heading.
var Heading = func(s string) string {
	return New().Bold(true).Foreground(color.Heading).Render(s)
}

// ErrorLabel renders the red prefix placed in front of user-facing errors.
var ErrorLabel = func(s string) string {
	return New().Foreground(color.Failure).Render(s)
}
