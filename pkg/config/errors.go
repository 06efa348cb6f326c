package config

import "errors"

var (
	// ErrRequiredMissing is returned when width, height or fps was not supplied.
	ErrRequiredMissing = errors.New("config: required parameter missing")

	// ErrInvalidValue is returned when a numeric parameter is not positive.
	ErrInvalidValue = errors.New("config: invalid parameter value")

	// ErrFrameTooLarge is returned when the buffers derived from the frame
	// geometry do not fit the engines' 32-bit sizes.
	ErrFrameTooLarge = errors.New("config: frame geometry too large")

	// ErrUnknownEngine is returned for an engine name no backend answers to.
	ErrUnknownEngine = errors.New("config: unknown engine")

	// ErrUsage is returned for command lines that cannot be parsed.
	ErrUsage = errors.New("config: invalid usage")
)
