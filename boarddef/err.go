package boarddef

import (
	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

// ErrDefineMissing names a definition variable the script never assigned.
type ErrDefineMissing string

func (err ErrDefineMissing) Error() string {
	return f("'%v' is not defined", string(err))
}

// ErrDefineType names a definition variable with the wrong type.
type ErrDefineType string

func (err ErrDefineType) Error() string {
	return f("'%v' is not the expected type", string(err))
}

// ErrDefineValue names a definition variable with an out-of-range value.
type ErrDefineValue string

func (err ErrDefineValue) Error() string {
	return f("'%v' is out of range", string(err))
}
