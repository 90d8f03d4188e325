package rep

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned when the decoder detects an offset, length, or
// block layout that cannot correspond to a valid stream. Nothing in
// the wire format itself prevents a hostile or damaged stream from
// claiming one; the decoder checks for it explicitly instead of
// trusting the framing (see DESIGN.md, Open Question 2).
var ErrCorrupt = errors.New("rep: corrupt input")

// ErrOutOfMemory is returned when the working buffer, hash table, or a
// decoder segment cannot be allocated.
var ErrOutOfMemory = errors.New("rep: out of memory")

// CallbackError wraps a failure from the caller-supplied read or write
// side of a stream: a non-nil error from io.Reader.Read or
// io.Writer.Write, carried upstream unmodified.
type CallbackError struct {
	Err error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("rep: callback error: %v", e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

func callbackErr(err error) error {
	if err == nil {
		return nil
	}
	return &CallbackError{Err: err}
}
