// Package color provides the terminal palette used by the listing and the command help.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette entries in use.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")

	HiPurple = New("13")
)

// Semantic aliases.
var (
	Rank    = Green
	Star    = Yellow
	Heading = Blue
	Failure = Red
	Warning = Yellow
)
