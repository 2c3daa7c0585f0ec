// Package display centralizes the terminal output of archive.
//
// A Printer is built once per run with the two writers (results and
// diagnostics) and a color mode from the configuration. It prints the
// 80-column separators, the "<file> <<== <line>" match lines and the
// localized warnings. Colors come from fatih/color and are only applied to
// writers that are terminals (or when forced with "always"); match lines and
// listings stay byte-for-byte plain when redirected.
//
//	p := display.NewPrinter(os.Stdout, os.Stderr, cfg.Color)
//	p.Header("Searching pattern: 'todo', in directory: '/home/ann/Documents/Archives/Volumes'")
//	p.Match("notes.txt", "todo: rename volumes")
//	p.Rule(display.Double)
//
// All functions accept io.Writer interfaces for testability.
package display
