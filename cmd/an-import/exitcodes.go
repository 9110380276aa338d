package main

import (
	"errors"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/core"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitUsage    = 3
	exitExternal = 4
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	if errors.Is(err, config.ErrInvalidOptions) {
		return exitUsage
	}
	if core.IsConfigurationError(err) {
		return exitConfig
	}
	var ext *core.ExternalCallError
	if errors.As(err, &ext) {
		return exitExternal
	}
	return exitFailure
}
