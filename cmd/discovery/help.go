package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/discovery/internal/ui"
)

// Patterns used to colorize Cobra's default help output.
var (
	// Section headers such as "Queries:" or "Flags:"; "Usage:" stays plain.
	reGroupHeader = regexp.MustCompile(`(?m)^([A-Z][^\n]*:)\s*$`)

	// Command rows: two-space indent, name, two or more spaces.
	reCommand = regexp.MustCompile(`(?m)^(  )(\S+)(  )`)

	// Flag type annotations, e.g. "--page int", "--similar-to int64".
	reFlagType = regexp.MustCompile(`(--?\S+\s+)(string|int64|int)\b`)

	reDefault = regexp.MustCompile(`\(default "[^"]*"\)`)
)

// colorizedHelpFunc returns a help function that prints a command's long
// description followed by its usage, styled when DISCOVERY_COLOR and the
// terminal allow it. Help runs before config is loaded, so only the
// environment is consulted.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		style := ui.Styler{Color: ui.ShouldUseColor(os.Getenv("DISCOVERY_COLOR"), asFile(out))}
		fmt.Fprint(out, renderHelp(cmd, style))
	}
}

func renderHelp(cmd *cobra.Command, style ui.Styler) string {
	out := cmd.OutOrStdout()
	var buf bytes.Buffer
	if long := strings.TrimSpace(cmd.Long); long != "" {
		buf.WriteString(long + "\n\n")
	}
	cmd.SetOut(&buf)
	_ = cmd.Usage()
	cmd.SetOut(out)

	if !style.Color {
		return buf.String()
	}
	return colorizeHelpOutput(buf.String(), style)
}

func colorizeHelpOutput(s string, style ui.Styler) string {
	s = reGroupHeader.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "Usage:") {
			return match
		}
		return style.Accent(strings.TrimSpace(match))
	})
	s = reCommand.ReplaceAllStringFunc(s, func(match string) string {
		parts := reCommand.FindStringSubmatch(match)
		return parts[1] + style.Command(parts[2]) + parts[3]
	})
	s = reFlagType.ReplaceAllStringFunc(s, func(match string) string {
		parts := reFlagType.FindStringSubmatch(match)
		return parts[1] + style.Muted(parts[2])
	})
	return reDefault.ReplaceAllStringFunc(s, style.Muted)
}
