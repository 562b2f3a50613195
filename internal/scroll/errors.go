package scroll

import "errors"

var (
	// ErrIndexOutOfRange is returned for index >= EntryCount (or negative).
	ErrIndexOutOfRange = errors.New("scroll: index out of range")
	// ErrTypeMismatch is returned when an entry lacks the capability an operation needs.
	ErrTypeMismatch = errors.New("scroll: entry type mismatch")
)
