package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning or error message
type Warning struct {
	Message string // Already localized text, may span several lines
	Fatal   bool   // Red instead of yellow
}

// Display writes the message followed by a newline, colored when useColor is set.
// Each line is colored on its own so that terminals don't bleed the color.
func (w Warning) Display(out io.Writer, useColor bool) {
	if !useColor {
		fmt.Fprintln(out, w.Message)
		return
	}

	c := color.New(color.FgYellow)
	if w.Fatal {
		c = color.New(color.FgRed)
	}
	c.EnableColor()

	lines := strings.Split(w.Message, "\n")
	for i, line := range lines {
		lines[i] = c.Sprint(line)
	}
	fmt.Fprintln(out, strings.Join(lines, "\n"))
}
