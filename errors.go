package reporter

import (
	"errors"
	"fmt"
)

// RuntimeError represents an operational error that should lead to exit
// code 2. Examples include configuration errors and an uncreatable
// output directory.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// TestFailureError represents a run that completed with failing tests
// (exit code 1). The run itself executed normally.
type TestFailureError struct {
	Failed   int
	TimedOut int
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test failure: %d failed, %d timed out", e.Failed, e.TimedOut)
}

// NewTestFailureError creates a new TestFailureError
func NewTestFailureError(failed, timedOut int) *TestFailureError {
	return &TestFailureError{Failed: failed, TimedOut: timedOut}
}

// IsTestFailureError checks if the error is or wraps a TestFailureError
func IsTestFailureError(err error) bool {
	var testErr *TestFailureError
	return err != nil && errors.As(err, &testErr)
}

// ReportWriteError marks a failure to produce one of the report
// artifacts. Artifact output is the whole point of the run, so these
// are fatal and surface as runtime errors.
type ReportWriteError struct {
	Artifact string
	Err      error
}

func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("failed to write %s report: %v", e.Artifact, e.Err)
}

func (e *ReportWriteError) Unwrap() error {
	return e.Err
}

// NewReportWriteError creates a new ReportWriteError
func NewReportWriteError(artifact string, err error) *ReportWriteError {
	return &ReportWriteError{Artifact: artifact, Err: err}
}
