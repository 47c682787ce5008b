package harness

import (
	"errors"
	"fmt"
)

// Sentinel errors for document verdicts.
// Use errors.Is() to check for these errors through the error chain.
var (
	// ErrCaseFailures indicates one or more test cases were misclassified
	// or hit a harness defect.
	ErrCaseFailures = errors.New("test case failures")

	// ErrCountMismatch indicates the executed case count does not match the
	// document's declared numberOfTests and no groups were skipped.
	ErrCountMismatch = errors.New("executed test count does not match numberOfTests")

	// ErrSkipsNotAllowed indicates groups were skipped for missing
	// capabilities but the caller did not allow skipping.
	ErrSkipsNotAllowed = errors.New("keys were skipped but skipping is not allowed")
)

// DocumentError reports a failed document verdict with enough context to
// locate the run. It supports errors.Is() through the wrapped error.
type DocumentError struct {
	File      string
	Algorithm string
	Format    Format
	Err       error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s [%s/%s]: %v", e.File, e.Algorithm, e.Format, e.Err)
	}
	return fmt.Sprintf("%s/%s: %v", e.Algorithm, e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DocumentError) Unwrap() error { return e.Err }
