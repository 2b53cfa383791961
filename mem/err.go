package mem

import (
	"errors"

	"github.com/ezrec/lpcboard/translate"
)

var f = translate.From

var (
	// Address space errors
	ErrOverlap       = errors.New(f("region overlap"))
	ErrAlreadyMapped = errors.New(f("region already mapped"))
	ErrUnmapped      = errors.New(f("address unmapped"))

	// Store errors
	ErrAccessViolation  = errors.New(f("write to read-only region"))
	ErrCapacityExceeded = errors.New(f("image exceeds capacity"))
	ErrAlreadySealed    = errors.New(f("store already sealed"))
	ErrOutOfRange       = errors.New(f("offset out of range"))
)

// ErrRegionOverlap reports which two mapped ranges collided.
type ErrRegionOverlap struct {
	Name     string
	Base     uint32
	Size     uint32
	WithName string
	WithBase uint32
	WithSize uint32
}

func (err *ErrRegionOverlap) Error() string {
	return f("region %v [0x%08x,0x%08x) overlaps %v [0x%08x,0x%08x)",
		err.Name, err.Base, uint64(err.Base)+uint64(err.Size),
		err.WithName, err.WithBase, uint64(err.WithBase)+uint64(err.WithSize))
}

func (err *ErrRegionOverlap) Unwrap() error {
	return ErrOverlap
}
