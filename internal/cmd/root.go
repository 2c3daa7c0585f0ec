package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/archive/internal/archiver"
	"github.com/harrison/archive/internal/config"
	"github.com/harrison/archive/internal/display"
	"github.com/harrison/archive/internal/locale"
	"github.com/harrison/archive/internal/locator"
	"github.com/harrison/archive/internal/logger"
)

// ProgramName is printed by --help and --version.
const ProgramName = "archive"

// Version is injected at build time via -ldflags
var Version = "2025-05-24"

// App is the process environment a command runs against.
type App struct {
	Getenv func(string) string
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultApp returns the real process environment.
func DefaultApp() *App {
	return &App{
		Getenv: os.Getenv,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// runner holds the per-invocation state shared by the command callbacks.
type runner struct {
	app     *App
	msgs    *locale.Catalog
	printer *display.Printer
	log     *logger.ConsoleLogger
}

// Run executes the archive command line and returns the process exit code.
func Run(app *App, args []string) int {
	root := NewRootCommand(app)
	root.SetArgs(normalizeArgs(args))

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// cobra errors not routed through our handlers
	fmt.Fprintf(app.Stderr, "Error: %v\n", err)
	return ExitUsage
}

// NewRootCommand creates and returns the root cobra command for archive.
// Messages use the language detected from app.Getenv until the config file
// is loaded.
func NewRootCommand(app *App) *cobra.Command {
	r := &runner{
		app:     app,
		msgs:    locale.For(locale.Detect(app.Getenv)),
		printer: display.NewPrinter(app.Stdout, app.Stderr, config.ColorAuto),
		log:     logger.NewConsoleLogger(app.Stderr, "warn"),
	}

	cmd := &cobra.Command{
		Use:   ProgramName + " -f <pattern> | -s <folder>",
		Short: "Search archived volume listings or record a new one",
		Long: `archive keeps one plain-text listing per scanned volume in
$HOME/Documents/Archives/Volumes.

  -s <folder> records every regular file under <folder>.
  -f <pattern> searches all listings, case-insensitively.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return r.usageError(fmt.Sprintf(r.msgs.UnknownArg, args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd)
		},
		// Messages are localized and printed by the handlers themselves
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	flags := cmd.Flags()
	flags.StringP("find", "f", "", "pattern to search, case-insensitive")
	flags.StringP("scan", "s", "", "folder to scan")
	flags.Bool("version", false, "print version information")
	flags.BoolP("help", "h", false, "print this help")
	flags.SortFlags = false

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return r.usageError(r.flagErrorMessage(err))
	})
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		r.printUsage()
	})

	return cmd
}

// normalizeArgs rewrites the single-dash "-ver" into "--version", leaving it
// alone where it is the value of -f or -s.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "-ver" && !(i > 0 && takesValue(args[i-1])) {
			arg = "--version"
		}
		out[i] = arg
	}
	return out
}

func takesValue(arg string) bool {
	switch arg {
	case "-f", "--find", "-s", "--scan":
		return true
	}
	return false
}

func (r *runner) run(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if v, _ := flags.GetBool("version"); v {
		fmt.Fprintf(r.app.Stdout, "%s, version: %s\n", ProgramName, Version)
		return nil
	}

	findSet := flags.Changed("find")
	scanSet := flags.Changed("scan")

	if findSet && scanSet {
		return r.usageError(r.msgs.BothGiven)
	}
	if !findSet && !scanSet {
		r.printer.Error(r.msgs.OneOrTheOther)
		r.printUsage()
		return &ExitError{Code: ExitUsage, Err: errors.New(r.msgs.OneOrTheOther)}
	}

	if _, err := config.GetHome(r.app.Getenv); err != nil {
		return r.fail(ExitEnv, r.msgs.NoHome, err)
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}

	archiveDir, err := config.GetArchiveDir(r.app.Getenv, cfg)
	if err != nil {
		return r.fail(ExitEnv, r.msgs.NoHome, err)
	}

	if findSet {
		pattern, _ := flags.GetString("find")
		return r.find(pattern, archiveDir)
	}

	folder, _ := flags.GetString("scan")
	return r.scan(folder, archiveDir)
}

// loadConfig reads the config file and applies its language, color and log
// level to the runner.
func (r *runner) loadConfig() (*config.Config, error) {
	path, err := config.GetConfigPath(r.app.Getenv)
	if err != nil {
		return nil, r.fail(ExitEnv, r.msgs.NoHome, err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, r.fail(ExitEnv, fmt.Sprintf(r.msgs.ConfigInvalid, path, err), err)
	}

	if lang, ok := locale.Parse(cfg.Lang); ok {
		r.msgs = locale.For(lang)
	}
	r.printer = display.NewPrinter(r.app.Stdout, r.app.Stderr, cfg.Color)
	r.log.SetLevel(cfg.LogLevel)
	r.log.LogDebug("config loaded from " + path)

	return cfg, nil
}

func (r *runner) find(pattern, archiveDir string) error {
	if !config.IsDir(archiveDir) {
		return r.fail(ExitEnv, fmt.Sprintf(r.msgs.InvalidDir, archiveDir), nil)
	}

	status, err := locator.New(r.printer, r.msgs, r.log).Locate(pattern, archiveDir)
	if err != nil {
		return r.fail(ExitSearch, fmt.Sprintf(r.msgs.SearchFailed, ExitSearch, archiveDir, err), err)
	}
	r.log.LogDebug("find finished: " + status.String())

	return nil
}

func (r *runner) scan(folder, archiveDir string) error {
	if !config.IsDir(folder) {
		return r.fail(ExitEnv, fmt.Sprintf(r.msgs.ScanInvalidDir, folder), nil)
	}

	if err := config.EnsureArchiveDir(archiveDir); err != nil {
		return r.fail(ExitEnv, fmt.Sprintf(r.msgs.CreateDirFailed, archiveDir, errors.Unwrap(err)), err)
	}

	status, err := archiver.New(r.printer, r.msgs, r.log).Archive(folder, archiveDir)
	if err != nil {
		return r.fail(ExitScan, fmt.Sprintf(r.msgs.ScanFailed, ExitScan, folder, err), err)
	}
	if status == archiver.StatusScanError {
		return &ExitError{Code: ExitScan}
	}

	return nil
}

// fail prints msg as an error and returns the matching ExitError.
func (r *runner) fail(code int, msg string, err error) error {
	r.printer.Error(msg)
	if err == nil {
		err = errors.New(msg)
	}
	return &ExitError{Code: code, Err: err}
}

func (r *runner) usageError(msg string) error {
	return r.fail(ExitUsage, msg, nil)
}

// flagErrorMessage maps a flag parsing error to its localized message.
func (r *runner) flagErrorMessage(err error) string {
	text := err.Error()

	if strings.HasPrefix(text, "flag needs an argument") {
		switch {
		case strings.Contains(text, "'f'") || strings.Contains(text, "--find"):
			return r.msgs.FindNeedsValue
		case strings.Contains(text, "'s'") || strings.Contains(text, "--scan"):
			return r.msgs.ScanNeedsValue
		}
	}

	return fmt.Sprintf(r.msgs.UnknownArg, offendingArg(text))
}

// offendingArg extracts the argument named by a pflag error such as
// "unknown flag: --bogus" or "unknown shorthand flag: 'x' in -x".
func offendingArg(text string) string {
	if i := strings.LastIndex(text, " "); i >= 0 && strings.HasPrefix(text, "unknown") {
		return text[i+1:]
	}
	return text
}

func (r *runner) printUsage() {
	out := r.app.Stdout
	fmt.Fprintf(out, "%s %s %s\n\n", r.msgs.UsageLabel, ProgramName, r.msgs.Usage)
	fmt.Fprintln(out, r.msgs.Options)
}
