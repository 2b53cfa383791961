package irq

import (
	"errors"

	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

var (
	// Router errors
	ErrLineIndex  = errors.New(f("line index out of range"))
	ErrAllocation = errors.New(f("line allocation invalid"))
)
