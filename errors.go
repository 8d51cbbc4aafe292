package olc

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every error returned by this package.
// Match it with errors.Is; inspect details with errors.As on the concrete
// error types below.
var ErrInvalidArgument = errors.New("olc: invalid argument")

// CodeError reports a code that cannot be used for the attempted operation:
// malformed, not full where a full code is required, padded where padding is
// not allowed, or too short to shorten.
type CodeError struct {
	Code   string
	Reason string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("olc: invalid code %q: %s", e.Code, e.Reason)
}

func (e *CodeError) Unwrap() error { return ErrInvalidArgument }

// LengthError reports an unusable requested code length. Lengths below the
// separator position must be even; an odd pair count would produce cells
// with a 20:1 aspect ratio.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("olc: invalid code length %d", e.Length)
}

func (e *LengthError) Unwrap() error { return ErrInvalidArgument }
