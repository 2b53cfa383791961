package cpu

import (
	"errors"

	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrUnsupportedKind = errors.New(f("unsupported processor kind"))
	ErrModeInvalid     = errors.New(f("processor mode invalid"))
	ErrNotConfigured   = errors.New(f("boot state not configured"))
)

// ErrKindUnknown names the processor kind that failed the lookup.
type ErrKindUnknown string

func (err ErrKindUnknown) Error() string {
	return f("unsupported processor kind '%v'", string(err))
}

func (err ErrKindUnknown) Unwrap() error {
	return ErrUnsupportedKind
}
