package board

import (
	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

// ErrBringUp names the bring-up step that failed and carries the cause.
// Bring-up is all-or-nothing: the first failing step aborts the sequence.
type ErrBringUp struct {
	Step string
	Err  error
}

func (err *ErrBringUp) Error() string {
	return f("bring-up %v: %v", err.Step, err.Err)
}

func (err *ErrBringUp) Unwrap() error {
	return err.Err
}

// ErrBoardUnknown names a board absent from the catalog.
type ErrBoardUnknown string

func (err ErrBoardUnknown) Error() string {
	return f("board '%v' unknown", string(err))
}

// ErrBoardDuplicate names a board registered twice.
type ErrBoardDuplicate string

func (err ErrBoardDuplicate) Error() string {
	return f("board '%v' already registered", string(err))
}
