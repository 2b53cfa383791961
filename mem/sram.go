package mem

// Sram is the volatile working memory: zero-initialized, read-write, content
// defined entirely by runtime writes.
type Sram struct {
	name string
	data []byte
}

var _ Region = (*Sram)(nil)

// NewSram creates a zero-initialized read-write store of the given capacity.
func NewSram(name string, capacity uint32) (sr *Sram) {
	sr = &Sram{
		name: name,
		data: make([]byte, capacity),
	}

	return
}

func (sr *Sram) Name() string {
	return sr.name
}

func (sr *Sram) Size() uint32 {
	return uint32(len(sr.data))
}

func (sr *Sram) Readonly() bool {
	return false
}

func (sr *Sram) ReadByte(offset uint32) (value byte, err error) {
	if offset >= uint32(len(sr.data)) {
		err = ErrOutOfRange
		return
	}

	value = sr.data[offset]

	return
}

func (sr *Sram) WriteByte(offset uint32, value byte) (err error) {
	if offset >= uint32(len(sr.data)) {
		err = ErrOutOfRange
		return
	}

	sr.data[offset] = value

	return
}
