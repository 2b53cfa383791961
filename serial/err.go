package serial

import (
	"errors"

	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

var (
	// Uart errors
	ErrNoLine = errors.New(f("no interrupt line"))
)
