package main

import (
	"errors"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError carries the process exit code for an error already reported to
// the user.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error   { return &exitError{code: exitUsage, err: err} }
func failureError(err error) error { return &exitError{code: exitFailure, err: err} }

// exitCode maps a command error onto the process exit code. Cobra's own
// argument and flag errors count as usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, analysis.ErrAnalysisFailed) {
		return exitFailure
	}
	return exitUsage
}

// reported reports whether the command already printed err itself.
func reported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.err == nil
}
