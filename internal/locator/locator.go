// Package locator implements the find operation: a case-insensitive
// substring search over the .txt files directly inside a directory.
package locator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/harrison/archive/internal/display"
	"github.com/harrison/archive/internal/fileutil"
	"github.com/harrison/archive/internal/locale"
	"github.com/harrison/archive/internal/logger"
)

// Extension is the only file extension searched.
const Extension = "txt"

// ErrInvalidUTF8 is returned for a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Status is the outcome of a search that did not fail.
type Status int

const (
	// StatusOK means the candidate files were searched, with or without matches.
	StatusOK Status = iota
	// StatusNoCandidates means the directory holds no .txt file.
	StatusNoCandidates
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoCandidates:
		return "no-candidates"
	default:
		return "unknown"
	}
}

// Pattern is a lower-cased search pattern. Matching is plain substring containment.
type Pattern string

// NewPattern case-folds raw.
func NewPattern(raw string) Pattern {
	return Pattern(strings.ToLower(raw))
}

// Match reports whether the already lower-cased line contains the pattern.
func (p Pattern) Match(lowerLine string) bool {
	return strings.Contains(lowerLine, string(p))
}

// Locator searches archive listings.
type Locator struct {
	printer *display.Printer
	msgs    *locale.Catalog
	log     *logger.ConsoleLogger
}

// New creates a Locator printing through printer with messages from msgs.
// A nil log discards diagnostics.
func New(printer *display.Printer, msgs *locale.Catalog, log *logger.ConsoleLogger) *Locator {
	if log == nil {
		log = logger.Discard()
	}
	return &Locator{printer: printer, msgs: msgs, log: log}
}

// Locate searches every .txt file directly inside dir, in file name order,
// and prints each matching line as soon as it is read. The first I/O error
// aborts the search and is returned; lines already printed stay printed.
func (l *Locator) Locate(pattern string, dir string) (Status, error) {
	p := NewPattern(pattern)

	l.printer.Header(fmt.Sprintf(l.msgs.FindHeader, string(p), dir))

	result, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions: []string{Extension},
	})
	if err != nil {
		return StatusOK, err
	}

	if len(result.Files) == 0 {
		l.printer.Warn(fmt.Sprintf(l.msgs.NoTxtFiles, dir))
		return StatusNoCandidates, nil
	}

	l.log.LogDebug(fmt.Sprintf("searching %d files in %s", len(result.Files), dir))

	anyMatch := false
	for _, file := range result.Files {
		matched, err := l.searchFile(file, p)
		if err != nil {
			return StatusOK, err
		}
		if matched {
			l.printer.Rule(display.Double)
			anyMatch = true
		}
	}

	if !anyMatch {
		l.printer.Line(fmt.Sprintf(l.msgs.NotFound, string(p)))
		l.printer.Rule(display.Double)
	}

	return StatusOK, nil
}

// searchFile prints the matching lines of one file and reports whether there was any.
func (l *Locator) searchFile(file fileutil.Entry, p Pattern) (bool, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	l.log.LogTrace("reading " + file.Path)

	found := false
	err = eachLine(f, func(line string) {
		line = strings.ToLower(line)
		if p.Match(line) {
			l.printer.Match(file.Name, line)
			found = true
		}
	})
	if err != nil {
		return found, fmt.Errorf("read %s: %w", file.Path, err)
	}

	return found, nil
}

// eachLine calls fn for every line of r without its "\n" or "\r\n"
// terminator. Lines may be of any length. A final line without a
// terminator is still delivered. A line that is not valid UTF-8 stops the
// read with ErrInvalidUTF8 before fn sees it.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fn(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
