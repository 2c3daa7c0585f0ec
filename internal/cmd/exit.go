package cmd

import "fmt"

// Process exit codes.
const (
	ExitOK = 0
	// ExitUsage covers argument errors: missing, conflicting or unknown flags.
	ExitUsage = 1
	// ExitEnv covers the environment: HOME, the config file and the target directories.
	ExitEnv = 2
	// ExitSearch is a read failure during find.
	ExitSearch = 3
	// ExitScan is a failure during scan, including a source that cannot be entered.
	ExitScan = 4
)

// ExitError signals a non-zero exit code without calling os.Exit in RunE.
// The user-facing message has already been printed when it is returned.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
