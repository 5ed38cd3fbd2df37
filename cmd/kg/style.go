package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders status lines for one output stream. Colours are dropped
// automatically when the stream is not a terminal.
type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color("#00AA00")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

func printProblems(w io.Writer, s styles, problems []string) {
	fmt.Fprintln(w, s.failure.Render("Validation errors:"))
	for _, p := range problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}

func printWarning(w io.Writer, s styles, format string, args ...any) {
	fmt.Fprintln(w, s.warning.Render("Warning: "+fmt.Sprintf(format, args...)))
}

func printError(w io.Writer, s styles, err error) {
	fmt.Fprintln(w, s.failure.Render("Error: ")+err.Error())
}
