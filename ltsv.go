package ltsv

import (
	"errors"
	"fmt"
)

// Wire format characters.
const (
	Tab       = '\t'
	Separator = ':'
	CR        = '\r'
	LF        = '\n'
)

// Sentinel errors for programmatic error handling.
var (
	ErrDecode = errors.New("ltsv: decode error")
	ErrIO     = errors.New("ltsv: i/o failure")
	ErrUsage  = errors.New("ltsv: usage error")

	// ErrClosed is returned when advancing a cursor after Close.
	ErrClosed = fmt.Errorf("%w: cursor is closed", ErrUsage)
	// ErrExhausted is returned by Next once the source has no more lines.
	ErrExhausted = fmt.Errorf("%w: no more records", ErrUsage)
)

// DecodeError reports a malformed token, or under strict mode an invalid label
// or value. It matches [ErrDecode] with errors.Is.
type DecodeError struct {
	// Line is the 1-based source line, or 0 when the line was decoded on its own.
	Line   int
	Token  string
	Label  string
	Value  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrDecode, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrDecode, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

func ioFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
