package main

import (
	"github.com/cockroachdb/errors"
)

const (
	// exitUI reports that the window could not run.
	exitUI = 1
	// exitConfig reports a bad zone or logging setting.
	exitConfig = 2
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string { return e.cause.Error() }
func (e *exitCoder) Cause() error  { return e.cause }
func (e *exitCoder) Unwrap() error { return e.cause }

// withExitCode attaches an exit code to err.
func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// exitCode returns 0 for nil, the attached code if any, and 1 otherwise.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.code
	}
	return 1
}
