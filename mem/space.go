package mem

import (
	"iter"
)

// Region is any byte store that can be mapped into an AddressSpace. Stores
// and memory-mapped peripherals implement the same interface.
type Region interface {
	Name() string
	Size() uint32
	Readonly() bool
	ReadByte(offset uint32) (value byte, err error)
	WriteByte(offset uint32, value byte) (err error)
}

type mapping struct {
	base   uint32
	region Region
}

// AddressSpace is the flat 32-bit address space of the board. Accesses are
// dispatched to the region mapped at the target address.
type AddressSpace struct {
	mappings []mapping
}

// NewAddressSpace creates an empty address space.
func NewAddressSpace() (as *AddressSpace) {
	as = &AddressSpace{}

	return
}

// Map inserts a region at the given base. The range [base, base+size) must
// not intersect any previously mapped range, and a region may be mapped only
// once.
func (as *AddressSpace) Map(region Region, base uint32) (err error) {
	end := uint64(base) + uint64(region.Size())

	for _, m := range as.mappings {
		if m.region == region {
			err = ErrAlreadyMapped
			return
		}
		mend := uint64(m.base) + uint64(m.region.Size())
		if uint64(base) < mend && uint64(m.base) < end {
			err = &ErrRegionOverlap{
				Name:     region.Name(),
				Base:     base,
				Size:     region.Size(),
				WithName: m.region.Name(),
				WithBase: m.base,
				WithSize: m.region.Size(),
			}
			return
		}
	}

	as.mappings = append(as.mappings, mapping{base: base, region: region})

	return
}

// lookup finds the mapping covering addr.
func (as *AddressSpace) lookup(addr uint32) (m mapping, ok bool) {
	for _, m = range as.mappings {
		if uint64(addr) >= uint64(m.base) &&
			uint64(addr) < uint64(m.base)+uint64(m.region.Size()) {
			ok = true
			return
		}
	}

	return
}

// Regions yields each mapped base and its region.
func (as *AddressSpace) Regions() iter.Seq2[uint32, Region] {
	return func(yield func(uint32, Region) bool) {
		for _, m := range as.mappings {
			if !yield(m.base, m.region) {
				return
			}
		}
	}
}

// ReadByte reads one byte from the region mapped at addr.
func (as *AddressSpace) ReadByte(addr uint32) (value byte, err error) {
	m, ok := as.lookup(addr)
	if !ok {
		err = ErrUnmapped
		return
	}

	return m.region.ReadByte(addr - m.base)
}

// WriteByte writes one byte to the region mapped at addr. Writing to a
// read-only region fails with ErrAccessViolation.
func (as *AddressSpace) WriteByte(addr uint32, value byte) (err error) {
	m, ok := as.lookup(addr)
	if !ok {
		err = ErrUnmapped
		return
	}
	if m.region.Readonly() {
		err = ErrAccessViolation
		return
	}

	return m.region.WriteByte(addr-m.base, value)
}

// ReadWord reads a little-endian 32-bit word, one byte at a time so that
// device regions see each access.
func (as *AddressSpace) ReadWord(addr uint32) (value uint32, err error) {
	for n := range uint32(4) {
		var b byte
		b, err = as.ReadByte(addr + n)
		if err != nil {
			return
		}
		value |= uint32(b) << (8 * n)
	}

	return
}

// WriteWord writes a little-endian 32-bit word.
func (as *AddressSpace) WriteWord(addr uint32, value uint32) (err error) {
	for n := range uint32(4) {
		err = as.WriteByte(addr+n, byte(value>>(8*n)))
		if err != nil {
			return
		}
	}

	return
}
