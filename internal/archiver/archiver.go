// Package archiver implements the scan operation: it records the relative
// path of every regular file under a directory into a listing file of the
// archive directory.
package archiver

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/archive/internal/display"
	"github.com/harrison/archive/internal/filelock"
	"github.com/harrison/archive/internal/fileutil"
	"github.com/harrison/archive/internal/locale"
	"github.com/harrison/archive/internal/logger"
)

// LockName is the lock file taken in the archive directory while a listing is written.
const LockName = ".archive.lock"

// rootName names the listing of the file system root, whose base name is empty.
const rootName = "root"

// Status is the outcome of a scan that did not fail with an error.
type Status int

const (
	// StatusOK means the listing was written.
	StatusOK Status = iota
	// StatusScanError means the source directory could not be entered.
	// The message has already been printed.
	StatusScanError
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusScanError:
		return "scan-error"
	default:
		return "unknown"
	}
}

// Archiver writes directory listings into the archive directory.
type Archiver struct {
	printer *display.Printer
	msgs    *locale.Catalog
	log     *logger.ConsoleLogger
}

// New creates an Archiver. A nil log discards diagnostics.
func New(printer *display.Printer, msgs *locale.Catalog, log *logger.ConsoleLogger) *Archiver {
	if log == nil {
		log = logger.Discard()
	}
	return &Archiver{printer: printer, msgs: msgs, log: log}
}

// OutputName returns the listing file name for sourceDir: the base name of
// its absolute path plus ".txt".
func OutputName(sourceDir string) (string, error) {
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", sourceDir, err)
	}

	base := filepath.Base(abs)
	if base == string(filepath.Separator) || base == "." || base == "" {
		base = rootName
	}
	return base + ".txt", nil
}

// Archive lists every regular file under sourceDir, depth-first with the
// entries of each directory in lexical order, into archiveDir/OutputName.
// The listing is rewritten on every run. Each line is "./" followed by the
// slash-separated path relative to sourceDir. The first I/O error aborts the
// scan; a partially written listing is left in place.
func (a *Archiver) Archive(sourceDir, archiveDir string) (Status, error) {
	name, err := OutputName(sourceDir)
	if err != nil {
		return StatusOK, err
	}
	outputPath := filepath.Join(archiveDir, name)

	lock := filelock.NewFileLock(filepath.Join(archiveDir, LockName))
	err = lock.LockOrWait(func() {
		a.log.LogInfo("waiting for " + lock.Path() + ", held by another scan")
	})
	if err != nil {
		return StatusOK, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			a.log.LogWarn(err.Error())
		}
	}()

	out, err := os.Create(outputPath)
	if err != nil {
		return StatusOK, fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer out.Close()

	root, err := os.OpenRoot(sourceDir)
	if err != nil {
		a.printer.Error(fmt.Sprintf(a.msgs.ChdirFailed, sourceDir, err))
		return StatusScanError, nil
	}
	defer root.Close()

	a.printer.Header(fmt.Sprintf(a.msgs.ScanHeader, sourceDir))
	a.log.LogDebug("writing listing of " + sourceDir + " to " + outputPath)

	w := bufio.NewWriter(out)
	count := 0
	err = fileutil.WalkFiles(root.FS(), func(rel string) error {
		count++
		_, err := w.WriteString("./" + rel + "\n")
		return err
	})
	if err != nil {
		return StatusOK, fmt.Errorf("scan %s: %w", sourceDir, err)
	}
	if err := w.Flush(); err != nil {
		return StatusOK, fmt.Errorf("write %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return StatusOK, fmt.Errorf("close %s: %w", outputPath, err)
	}

	a.log.LogDebug(fmt.Sprintf("%d files listed", count))

	a.printer.Line(fmt.Sprintf(a.msgs.ScanDone, outputPath))
	a.printer.Rule(display.Dash)

	return StatusOK, nil
}
