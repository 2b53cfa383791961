package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressSpace_MapDisjoint(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()

	err := as.Map(NewSram("a", 0x1000), 0x1000)
	assert.NoError(err)
	err = as.Map(NewSram("b", 0x1000), 0x2000)
	assert.NoError(err)
	err = as.Map(NewSram("c", 0x1000), 0x0)
	assert.NoError(err)
}

func TestAddressSpace_MapOverlap(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()

	// [0x1000,0x2000) then [0x1800,0x2800) must collide.
	err := as.Map(NewSram("a", 0x1000), 0x1000)
	assert.NoError(err)
	err = as.Map(NewSram("b", 0x1000), 0x1800)
	assert.ErrorIs(err, ErrOverlap)

	// Identical range collides too.
	err = as.Map(NewSram("c", 0x1000), 0x1000)
	assert.ErrorIs(err, ErrOverlap)

	// Touching ranges do not.
	err = as.Map(NewSram("d", 0x1000), 0x2000)
	assert.NoError(err)
}

func TestAddressSpace_MapTwice(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()
	sr := NewSram("a", 0x100)

	err := as.Map(sr, 0x0)
	assert.NoError(err)
	err = as.Map(sr, 0x10000)
	assert.ErrorIs(err, ErrAlreadyMapped)
}

func TestAddressSpace_Dispatch(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()

	err := as.Map(NewSram("lo", 0x100), 0x0)
	assert.NoError(err)
	err = as.Map(NewSram("hi", 0x100), 0x40000000)
	assert.NoError(err)

	err = as.WriteByte(0x40000010, 0x5a)
	assert.NoError(err)

	value, err := as.ReadByte(0x40000010)
	assert.NoError(err)
	assert.Equal(byte(0x5a), value)

	// The low region is unaffected.
	value, err = as.ReadByte(0x10)
	assert.NoError(err)
	assert.Equal(byte(0), value)

	// Unmapped hole between the regions.
	_, err = as.ReadByte(0x100)
	assert.ErrorIs(err, ErrUnmapped)
	err = as.WriteByte(0x100, 1)
	assert.ErrorIs(err, ErrUnmapped)
}

func TestAddressSpace_Words(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()

	err := as.Map(NewSram("sram", 0x100), 0x0)
	assert.NoError(err)

	err = as.WriteWord(0x10, 0xe3a00000)
	assert.NoError(err)

	// Little-endian byte order.
	value, err := as.ReadByte(0x10)
	assert.NoError(err)
	assert.Equal(byte(0x00), value)
	value, err = as.ReadByte(0x13)
	assert.NoError(err)
	assert.Equal(byte(0xe3), value)

	word, err := as.ReadWord(0x10)
	assert.NoError(err)
	assert.Equal(uint32(0xe3a00000), word)
}

func TestAddressSpace_ReadonlyWrite(t *testing.T) {
	assert := assert.New(t)

	as := NewAddressSpace()
	fl := NewFlash("flash", 0x100)

	err := fl.Load([]byte{1, 2, 3, 4})
	assert.NoError(err)
	err = as.Map(fl, 0x0)
	assert.NoError(err)

	err = as.WriteByte(0x0, 0xff)
	assert.ErrorIs(err, ErrAccessViolation)

	// The loaded bytes read back unchanged.
	value, err := as.ReadByte(0x0)
	assert.NoError(err)
	assert.Equal(byte(1), value)
}
