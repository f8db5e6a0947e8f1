package ui

import "fmt"

// ANSI256 color codes matching the Ayu palette.
const (
	colorAccent = 74  // blue
	colorCmd    = 250 // light gray
	colorMuted  = 245 // medium gray
	colorError  = 203 // red
)

// Styler renders text in the CLI palette. The zero Styler renders plain text.
type Styler struct {
	Color bool
}

func (s Styler) paint(code int, text string) string {
	if !s.Color {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, text)
}

// Accent renders section headers and query keys.
func (s Styler) Accent(text string) string { return s.paint(colorAccent, text) }

// Command renders command names.
func (s Styler) Command(text string) string { return s.paint(colorCmd, text) }

// Muted renders secondary text such as flag types and defaults.
func (s Styler) Muted(text string) string { return s.paint(colorMuted, text) }

// Error renders failure messages.
func (s Styler) Error(text string) string { return s.paint(colorError, text) }
