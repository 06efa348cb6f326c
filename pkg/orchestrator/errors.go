package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/pump"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitOverflow    = 70
	ExitInterrupted = 130
	// ExitInitFailed is reported by the shell as 255.
	ExitInitFailed = -1
)

// ExitError carries the exit status a run ended with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v (exit %d)", e.Err, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	switch {
	case errors.Is(err, config.ErrRequiredMissing),
		errors.Is(err, config.ErrInvalidValue),
		errors.Is(err, config.ErrFrameTooLarge),
		errors.Is(err, config.ErrUnknownEngine),
		errors.Is(err, config.ErrUsage):
		return ExitUsage
	case errors.Is(err, pump.ErrInitFailed):
		return ExitInitFailed
	case errors.Is(err, pump.ErrOutputOverflow):
		return ExitOverflow
	case errors.Is(err, pump.ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}

func exitError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitCode(err), Err: err}
}
