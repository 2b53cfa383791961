package mem

// Flash is the non-volatile store. It is created zero-filled and writable,
// loaded exactly once with a firmware image, and sealed read-only from then
// on.
type Flash struct {
	name   string
	data   []byte
	sealed bool
}

var _ Region = (*Flash)(nil)

// NewFlash creates a zero-initialized flash store of the given capacity.
func NewFlash(name string, capacity uint32) (fl *Flash) {
	fl = &Flash{
		name: name,
		data: make([]byte, capacity),
	}

	return
}

func (fl *Flash) Name() string {
	return fl.name
}

func (fl *Flash) Size() uint32 {
	return uint32(len(fl.data))
}

// Readonly reports whether the store has been sealed by Load.
func (fl *Flash) Readonly() bool {
	return fl.sealed
}

// Load copies image into the store starting at offset 0 and seals the store
// read-only. A second Load fails with ErrAlreadySealed; an image larger than
// the capacity fails with ErrCapacityExceeded and leaves the store unsealed
// and untouched.
func (fl *Flash) Load(image []byte) (err error) {
	if fl.sealed {
		err = ErrAlreadySealed
		return
	}
	if len(image) > len(fl.data) {
		err = ErrCapacityExceeded
		return
	}

	copy(fl.data, image)
	fl.sealed = true

	return
}

func (fl *Flash) ReadByte(offset uint32) (value byte, err error) {
	if offset >= uint32(len(fl.data)) {
		err = ErrOutOfRange
		return
	}

	value = fl.data[offset]

	return
}

func (fl *Flash) WriteByte(offset uint32, value byte) (err error) {
	if fl.sealed {
		err = ErrAccessViolation
		return
	}
	if offset >= uint32(len(fl.data)) {
		err = ErrOutOfRange
		return
	}

	fl.data[offset] = value

	return
}
