package pardiff

import "github.com/gopatchy/pardiff/pkg/errors"

var (
	// Base error; every error in pardiff inherits from this
	Err = errors.Err

	// Input errors
	ErrFormat     = errors.ErrFormat
	ErrEmptyInput = errors.ErrEmptyInput
	ErrBadHeader  = errors.ErrBadHeader
	ErrOpenFile   = errors.ErrOpenFile

	// Usage and configuration errors
	ErrInvalidWidth  = errors.ErrInvalidWidth
	ErrUnknownMode   = errors.ErrUnknownMode
	ErrUnknownFormat = errors.ErrUnknownFormat
	ErrConfig        = errors.ErrConfig

	// Fatal: the standard-format state machine reached a state it cannot
	// handle. Callers should stop processing entirely.
	ErrInternal = errors.ErrInternal
)
