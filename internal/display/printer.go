package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// RuleWidth is the width of separator lines.
const RuleWidth = 80

// Separator characters.
const (
	Dash   = '-'
	Double = '='
)

// MatchMarker separates a file name from a matching line.
const MatchMarker = " <<== "

// Printer writes user-facing output: results to out, warnings and errors to errOut.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	outColor bool
	errColor bool
}

// NewPrinter creates a Printer. colorMode is "auto", "always" or "never";
// with "auto" each writer gets color only if it is a terminal.
func NewPrinter(out, errOut io.Writer, colorMode string) *Printer {
	return &Printer{
		out:      out,
		errOut:   errOut,
		outColor: UseColor(out, colorMode),
		errColor: UseColor(errOut, colorMode),
	}
}

// UseColor decides whether w should receive ANSI colors.
func UseColor(w io.Writer, colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	// same opt-outs fatih/color honours for stdout
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}

// Rule prints RuleWidth copies of ch.
func (p *Printer) Rule(ch rune) {
	fmt.Fprintln(p.out, Rule(ch))
}

// Header prints title between two dash rules.
func (p *Printer) Header(title string) {
	p.Rule(Dash)
	if p.outColor {
		title = p.paint(color.New(color.Bold), title)
	}
	fmt.Fprintln(p.out, title)
	p.Rule(Dash)
}

// Line prints a plain line of output.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Match prints one matching line as "<name> <<== <line>".
func (p *Printer) Match(name, line string) {
	if p.outColor {
		name = p.paint(color.New(color.FgCyan), name)
	}
	fmt.Fprintf(p.out, "%s%s%s\n", name, MatchMarker, line)
}

// Warn prints a warning to the error writer.
func (p *Printer) Warn(message string) {
	Warning{Message: message}.Display(p.errOut, p.errColor)
}

// Error prints an error to the error writer.
func (p *Printer) Error(message string) {
	Warning{Message: message, Fatal: true}.Display(p.errOut, p.errColor)
}

func (p *Printer) paint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

// Rule returns a separator line of RuleWidth copies of ch.
func Rule(ch rune) string {
	return strings.Repeat(string(ch), RuleWidth)
}
