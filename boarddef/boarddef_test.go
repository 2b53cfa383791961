package boarddef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	def := Default()

	assert.Equal("lpc2119", def.Name)
	assert.Equal("arm946", def.Cpu)
	assert.Equal(uint32(0x00000000), def.FlashBase)
	assert.Equal(uint32(131072), def.FlashSize)
	assert.Equal(uint32(0x40000000), def.SramBase)
	assert.Equal(uint32(16384), def.SramSize)
	assert.Equal(uint32(0xe000c000), def.UartBase)
	assert.Equal(32, def.IrqLines)
}

func TestParse_Expressions(t *testing.T) {
	assert := assert.New(t)

	def, err := Parse("variant", `
name = "variant"
cpu = "arm7tdmi"
flash_base = 0
flash_size = 256 * KiB
sram_base = 0x40000000
sram_size = 1 * MiB - 16 * KiB
uart_base = 0xE000C000
irq_lines = 16
`)
	assert.NoError(err)
	assert.Equal(uint32(262144), def.FlashSize)
	assert.Equal(uint32(1032192), def.SramSize)
	assert.Equal(16, def.IrqLines)
}

func TestParse_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("broken", `name = "broken"`)
	assert.Error(err)
	assert.IsType(ErrDefineMissing(""), err)
	assert.Contains(err.Error(), "cpu")
}

func TestParse_BadType(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("broken", `
name = "broken"
cpu = "arm946"
flash_base = "zero"
flash_size = 1
sram_base = 0
sram_size = 1
uart_base = 0
irq_lines = 1
`)
	assert.Error(err)
	assert.IsType(ErrDefineType(""), err)
}

func TestParse_BadValue(t *testing.T) {
	assert := assert.New(t)

	// A base past the 32-bit space.
	_, err := Parse("broken", `
name = "broken"
cpu = "arm946"
flash_base = 0x1_0000_0000
flash_size = 1
sram_base = 0
sram_size = 1
uart_base = 0
irq_lines = 1
`)
	assert.Error(err)
	assert.IsType(ErrDefineValue(""), err)

	// Zero-sized stores are rejected.
	_, err = Parse("broken", `
name = "broken"
cpu = "arm946"
flash_base = 0
flash_size = 0
sram_base = 0
sram_size = 1
uart_base = 0
irq_lines = 1
`)
	assert.ErrorContains(err, "flash_size")
}

func TestParse_SyntaxError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("broken", `flash_base = = 1`)
	assert.Error(err)
	assert.Contains(err.Error(), "board definition broken")
}
