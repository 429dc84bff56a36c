// Package console provides styled, human-facing terminal output for the
// registry build commands.
//
// A Console is constructed by the command that owns the output stream and
// passed down explicitly; there is no package-level default and no global
// state.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes status lines to a single output stream.
type Console struct {
	out     io.Writer
	success lipgloss.Style
	warning lipgloss.Style
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{
		out:     out,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Successf prints a green status line.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.success.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow warning line.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.warning.Render(fmt.Sprintf(format, args...)))
}
