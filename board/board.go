// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package board implements the bring-up routine for an emulated
// microcontroller target: it constructs the address space, loads the firmware
// image into flash, maps the working SRAM, wires the UART to interrupt line 0,
// and sets the processor's boot register state before triggering reset.
package board

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/lpcboard/boarddef"
	"github.com/ezrec/lpcboard/cpu"
	"github.com/ezrec/lpcboard/internal"
	"github.com/ezrec/lpcboard/irq"
	"github.com/ezrec/lpcboard/mem"
	"github.com/ezrec/lpcboard/serial"
)

// The UART's line index on the interrupt router.
const UART_IRQ_LINE = 0

// The built-in boot program:
//
//	mov r0, #0
//	mov r1, #1
//	str r1, [r0]
//	b .
var bootProgram = []uint32{0xe3a00000, 0xe3a01001, 0xe5801000, 0xeafffffe}

// BootImage returns the built-in firmware image: the boot program in
// little-endian byte order, 16 bytes.
func BootImage() (image []byte) {
	for _, word := range bootProgram {
		image = binary.LittleEndian.AppendUint32(image, word)
	}

	return
}

// Options selects host-side wiring for a bring-up.
type Options struct {
	Firmware     []byte    // Firmware image; nil loads the built-in boot program.
	SerialInput  io.Reader // UART receive source; nil leaves the queue empty.
	SerialOutput io.Writer // UART transmit sink; nil discards.
}

// Board aggregates the brought-up target. All regions and the interrupt
// router are owned by the board; the Cpu handle is shared with the execution
// engine.
type Board struct {
	Def boarddef.Definition

	Space  *mem.AddressSpace
	Flash  *mem.Flash
	Sram   *mem.Sram
	Router *irq.Router
	Uart   *serial.Uart
	Cpu    *cpu.Cpu

	serialIn io.Reader
}

// FeedSerial pumps the bring-up's serial input into the UART's receive
// queue, raising its interrupt line as data arrives. A board without serial
// input returns immediately. After bring-up this may run from its own
// goroutine, as a peripheral's execution context.
func (bd *Board) FeedSerial() (err error) {
	if bd.serialIn == nil {
		return
	}

	return bd.Uart.FeedFrom(bd.serialIn)
}

// BringUp runs the full bring-up sequence for a board definition. On any
// failure it returns a nil board and an *ErrBringUp naming the failed step;
// there is no partial bring-up.
func BringUp(def boarddef.Definition, opts Options) (bd *Board, err error) {
	fail := func(step string, stepErr error) (*Board, error) {
		return nil, &ErrBringUp{Step: step, Err: stepErr}
	}

	kind, err := cpu.KindOf(def.Cpu)
	if err != nil {
		return fail("cpu", err)
	}
	proc, err := cpu.New(kind)
	if err != nil {
		return fail("cpu", err)
	}

	space := mem.NewAddressSpace()

	flash := mem.NewFlash(def.Name+".flash", def.FlashSize)
	image := opts.Firmware
	if image == nil {
		image = BootImage()
	}
	err = flash.Load(image)
	if err != nil {
		return fail("firmware", err)
	}
	err = space.Map(flash, def.FlashBase)
	if err != nil {
		return fail("flash", err)
	}

	sram := mem.NewSram(def.Name+".sram", def.SramSize)
	err = space.Map(sram, def.SramBase)
	if err != nil {
		return fail("sram", err)
	}

	router, err := irq.Allocate(def.IrqLines, proc)
	if err != nil {
		return fail("irq", err)
	}

	line, err := router.Line(UART_IRQ_LINE)
	if err != nil {
		return fail("uart", err)
	}
	uart, err := serial.NewUart(def.Name+".uart0", line, opts.SerialOutput)
	if err != nil {
		return fail("uart", err)
	}
	err = space.Map(uart, def.UartBase)
	if err != nil {
		return fail("uart", err)
	}

	// Execution begins at the start of firmware; the stack grows down from
	// the top of working memory. Supervisor mode, interrupts masked until
	// the firmware unmasks them.
	err = proc.ConfigureBoot(def.FlashBase, def.SramBase+def.SramSize,
		cpu.MODE_SVC, true)
	if err != nil {
		return fail("boot state", err)
	}
	err = proc.Reset()
	if err != nil {
		return fail("reset", err)
	}

	bd = &Board{
		Def:    def,
		Space:  space,
		Flash:  flash,
		Sram:   sram,
		Router: router,
		Uart:   uart,
		Cpu:    proc,

		serialIn: opts.SerialInput,
	}

	return
}

// Defines returns an iterator over all of the defines
func (bd *Board) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"FLASH_BASE": fmt.Sprintf("0x%08x", bd.Def.FlashBase),
		"FLASH_SIZE": fmt.Sprintf("0x%x", bd.Def.FlashSize),
		"SRAM_BASE":  fmt.Sprintf("0x%08x", bd.Def.SramBase),
		"SRAM_SIZE":  fmt.Sprintf("0x%x", bd.Def.SramSize),
		"UART0_BASE": fmt.Sprintf("0x%08x", bd.Def.UartBase),
		"IRQ_LINES":  fmt.Sprintf("%v", bd.Def.IrqLines),
	}

	return internal.IterSeq2Concat(maps.All(defines),
		bd.Cpu.Defines(),
		bd.Uart.Defines(),
	)
}
