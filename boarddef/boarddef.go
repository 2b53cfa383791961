// Package boarddef evaluates board definition scripts: small Starlark files
// assigning the memory map and processor kind of a board variant. The shipped
// lpc2119 definition is embedded at build time; a host may evaluate its own
// script to describe a variant without recompiling.
package boarddef

import (
	"github.com/pkg/errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Definition describes a board's hardware topology: region bases and sizes,
// the UART base, the interrupt line count, and the processor kind.
type Definition struct {
	Name      string
	Cpu       string
	FlashBase uint32
	FlashSize uint32
	SramBase  uint32
	SramSize  uint32
	UartBase  uint32
	IrqLines  int
}

// The reference board. Bases and sizes must stay bit-exact with the NXP
// LPC2119 memory map.
const lpc2119Source = `
name = "lpc2119"
cpu = "arm946"
flash_base = 0x00000000
flash_size = 128 * KiB
sram_base = 0x40000000
sram_size = 16 * KiB
uart_base = 0xE000C000
irq_lines = 32
`

// Default returns the embedded lpc2119 definition.
func Default() (def Definition) {
	def, err := Parse("lpc2119", lpc2119Source)
	if err != nil {
		// The embedded source is a build-time constant.
		panic(err)
	}

	return
}

// Parse evaluates a board definition script. src may be a string, []byte, or
// io.Reader; name is used in diagnostics. KiB and MiB are predeclared.
func Parse(name string, src any) (def Definition, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"KiB": starlark.MakeInt(1024),
		"MiB": starlark.MakeInt(1 << 20),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		err = errors.Wrapf(err, "board definition %v", name)
		return
	}

	strs := map[string]*string{
		"name": &def.Name,
		"cpu":  &def.Cpu,
	}
	for key, into := range strs {
		err = stringOf(dict, key, into)
		if err != nil {
			return
		}
	}

	words := map[string]*uint32{
		"flash_base": &def.FlashBase,
		"flash_size": &def.FlashSize,
		"sram_base":  &def.SramBase,
		"sram_size":  &def.SramSize,
		"uart_base":  &def.UartBase,
	}
	for key, into := range words {
		err = uint32Of(dict, key, into)
		if err != nil {
			return
		}
	}

	err = linesOf(dict, "irq_lines", &def.IrqLines)
	if err != nil {
		return
	}

	for _, key := range []string{"flash_size", "sram_size"} {
		if *words[key] == 0 {
			err = ErrDefineValue(key)
			return
		}
	}

	return
}

func stringOf(dict starlark.StringDict, key string, into *string) (err error) {
	value, ok := dict[key]
	if !ok {
		err = ErrDefineMissing(key)
		return
	}
	str, ok := value.(starlark.String)
	if !ok {
		err = ErrDefineType(key)
		return
	}

	*into = string(str)

	return
}

func uint32Of(dict starlark.StringDict, key string, into *uint32) (err error) {
	value, ok := dict[key]
	if !ok {
		err = ErrDefineMissing(key)
		return
	}
	num, ok := value.(starlark.Int)
	if !ok {
		err = ErrDefineType(key)
		return
	}
	num64, ok := num.Int64()
	if !ok || num64 < 0 || num64 > 0xffffffff {
		err = ErrDefineValue(key)
		return
	}

	*into = uint32(num64)

	return
}

func linesOf(dict starlark.StringDict, key string, into *int) (err error) {
	value, ok := dict[key]
	if !ok {
		err = ErrDefineMissing(key)
		return
	}
	num, ok := value.(starlark.Int)
	if !ok {
		err = ErrDefineType(key)
		return
	}
	num64, ok := num.Int64()
	if !ok || num64 <= 0 || num64 > 1024 {
		err = ErrDefineValue(key)
		return
	}

	*into = int(num64)

	return
}
