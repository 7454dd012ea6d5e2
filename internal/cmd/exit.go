// Package cmd implements the sfxgraph CLI's command tree: compile, run,
// list-transforms, dot and diff, wired against the compiler/scheduler and
// arena planner in internal/pipeline.
package cmd

import (
	"errors"
	"os"

	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

// Exit codes distinguish user input mistakes (bad specs, bad parameters)
// from internal bugs (a planner post-condition failure) so scripts driving
// the CLI can tell the two apart.
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitCompileError  = 2
	ExitExecuteError  = 3
	ExitCorruptedTree = 4
)

// ExitError wraps an error with the exit code the CLI should terminate with.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeFromError classifies a compile/execute error from the sferrors
// taxonomy into one of the CLI's exit codes.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, sferrors.ErrCorruptedTree):
		return ExitCorruptedTree
	case errors.Is(err, sferrors.ErrExecution):
		return ExitExecuteError
	case errors.Is(err, sferrors.ErrParse),
		errors.Is(err, sferrors.ErrUnknownTransform),
		errors.Is(err, sferrors.ErrInvalidParameterName),
		errors.Is(err, sferrors.ErrInvalidParameterValue),
		errors.Is(err, sferrors.ErrIncompatibleFormats):
		return ExitCompileError
	default:
		return ExitGeneralError
	}
}

// Exit terminates the process with the appropriate exit code for err.
func Exit(err error) {
	os.Exit(ExitCodeFromError(err))
}
