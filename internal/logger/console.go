// Package logger provides levelled diagnostic logging for archive.
//
// Diagnostics go to stderr and are filtered by level (default "warn"), so a
// normal run prints nothing here. User-facing messages are not logged; they
// are printed from the locale catalog by the commands themselves.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders diagnostics from most to least verbose.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	// LevelError only silences the lower levels; nothing is logged at it.
	LevelError
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

var levelColors = [...]color.Attribute{color.FgHiBlack, color.FgCyan, color.FgBlue, color.FgYellow, color.FgRed}

// String returns the upper-case name used in log lines.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "WARN"
	}
	return levelNames[l]
}

// ParseLevel maps trace, debug, info, warn or error (any case, surrounding
// spaces ignored) to a Level. Anything else is LevelWarn.
func ParseLevel(name string) Level {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Level(i)
		}
	}
	return LevelWarn
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines at or above its level.
// A nil *ConsoleLogger or a nil writer drops everything.
type ConsoleLogger struct {
	writer io.Writer
	level  Level
	mutex  sync.Mutex
	color  bool
}

// NewConsoleLogger creates a ConsoleLogger writing to writer at the named level.
// Levels are colored only when writer is os.Stdout or os.Stderr on a terminal.
func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	return NewConsoleLoggerWithColor(writer, level, isTerminal(writer))
}

// NewConsoleLoggerWithColor is NewConsoleLogger with an explicit color decision.
func NewConsoleLoggerWithColor(writer io.Writer, level string, useColor bool) *ConsoleLogger {
	return &ConsoleLogger{writer: writer, level: ParseLevel(level), color: useColor}
}

// Discard returns a logger that drops everything.
func Discard() *ConsoleLogger {
	return &ConsoleLogger{level: LevelError}
}

// SetLevel changes the minimum level. Invalid names reset it to "warn".
func (cl *ConsoleLogger) SetLevel(level string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.level = ParseLevel(level)
}

func isTerminal(w io.Writer) bool {
	if w != os.Stdout && w != os.Stderr {
		return false
	}
	// color.NoColor is false only for a TTY without NO_COLOR set
	return !color.NoColor
}

// LogTrace logs per-file detail.
func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }

// LogDebug logs progress of an operation.
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }

// LogInfo logs events a user may want to see, such as waiting on a lock.
func (cl *ConsoleLogger) LogInfo(message string) { cl.log(LevelInfo, message) }

// LogWarn logs recoverable problems.
func (cl *ConsoleLogger) LogWarn(message string) { cl.log(LevelWarn, message) }

func (cl *ConsoleLogger) log(level Level, message string) {
	if cl == nil || cl.writer == nil {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if level < cl.level {
		return
	}

	name := level.String()
	if cl.color {
		c := color.New(levelColors[level])
		// decided at construction; the global NoColor must not override it
		c.EnableColor()
		name = c.Sprint(name)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", time.Now().Format("15:04:05"), name, message)
}
