package sheet

import "errors"

var (
	ErrRowOutOfRange = errors.New("row out of range")
	ErrUnknownField  = errors.New("unknown field")
	ErrReadOnlyField = errors.New("field is read-only")
)
