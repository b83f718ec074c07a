package errors

import "fmt"

var (
	// Base error; every error in pardiff inherits from this
	Err = fmt.Errorf("pardiff error")

	// Input errors
	ErrFormat     = fmt.Errorf("input format error (%w)", Err)
	ErrEmptyInput = fmt.Errorf("empty input stream (%w)", ErrFormat)
	ErrBadHeader  = fmt.Errorf("bad file header (%w)", ErrFormat)
	ErrOpenFile   = fmt.Errorf("error opening input file (%w)", Err)

	// Usage and configuration errors
	ErrInvalidWidth  = fmt.Errorf("invalid width (%w)", Err)
	ErrUnknownMode   = fmt.Errorf("unknown mode (%w)", Err)
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrConfig        = fmt.Errorf("invalid config (%w)", Err)

	// Parser bugs; never caused by input
	ErrInternal = fmt.Errorf("internal error (%w)", Err)
)
