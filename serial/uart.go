// Package serial implements the board's memory-mapped UART. It exposes two
// 32-bit registers (data and status), transmits to an io.Writer, and holds
// one interrupt line that follows the receive queue: asserted while data is
// pending, deasserted when the queue drains.
package serial

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"sync"

	"github.com/ezrec/lpcboard/irq"
	"github.com/ezrec/lpcboard/mem"
)

// Register offsets within the mapped range.
const (
	UART_REG_DATA   = uint32(0x0) // Write transmits, read pops the rx queue.
	UART_REG_STATUS = uint32(0x4) // Read-only status bits.
	UART_REG_SIZE   = uint32(0x8) // Mapped size: two 32-bit registers.

	UART_STATUS_RX_READY = uint32(1 << 0) // Receive data pending.
	UART_STATUS_TX_READY = uint32(1 << 1) // Transmitter always ready.
)

var _serial_defines = map[string]string{
	"UART_REG_DATA":   fmt.Sprintf("0x%x", UART_REG_DATA),
	"UART_REG_STATUS": fmt.Sprintf("0x%x", UART_REG_STATUS),
	"UART_REG_SIZE":   fmt.Sprintf("0x%x", UART_REG_SIZE),
}

// Uart is the memory-mapped serial peripheral. It implements mem.Region so
// the board maps it like any other store.
type Uart struct {
	name string
	line *irq.Line

	mu  sync.Mutex
	out io.Writer
	rx  []byte
}

var _ mem.Region = (*Uart)(nil)

// NewUart creates a UART bound to one interrupt line, transmitting to out.
// A nil out discards transmitted bytes.
func NewUart(name string, line *irq.Line, out io.Writer) (ua *Uart, err error) {
	if line == nil {
		err = ErrNoLine
		return
	}

	ua = &Uart{
		name: name,
		line: line,
		out:  out,
	}

	return
}

// Defines for the uart
func (ua *Uart) Defines() iter.Seq2[string, string] {
	return maps.All(_serial_defines)
}

func (ua *Uart) Name() string {
	return ua.name
}

func (ua *Uart) Size() uint32 {
	return UART_REG_SIZE
}

func (ua *Uart) Readonly() bool {
	return false
}

// Feed queues a received byte and raises the interrupt line.
func (ua *Uart) Feed(value byte) (err error) {
	ua.mu.Lock()
	ua.rx = append(ua.rx, value)
	ua.mu.Unlock()

	return ua.line.Raise()
}

// FeedFrom queues every byte read from r, raising the interrupt line as the
// data arrives. It returns once r is exhausted.
func (ua *Uart) FeedFrom(r io.Reader) (err error) {
	buf := make([]byte, 1)
	for {
		var n int
		n, err = r.Read(buf)
		if n > 0 {
			err = ua.Feed(buf[0])
			if err != nil {
				return
			}
			continue
		}
		if err == io.EOF {
			err = nil
		}
		return
	}
}

// status computes the current status register value.
func (ua *Uart) status() (value uint32) {
	value = UART_STATUS_TX_READY
	if len(ua.rx) > 0 {
		value |= UART_STATUS_RX_READY
	}

	return
}

// ReadByte reads from the register bank. Reading the data register pops the
// oldest received byte; draining the queue lowers the interrupt line. Bytes
// 1-3 of each 32-bit register read as zero.
func (ua *Uart) ReadByte(offset uint32) (value byte, err error) {
	if offset >= UART_REG_SIZE {
		err = mem.ErrOutOfRange
		return
	}

	ua.mu.Lock()
	defer ua.mu.Unlock()

	switch offset {
	case UART_REG_DATA:
		if len(ua.rx) == 0 {
			return
		}
		value = ua.rx[0]
		ua.rx = ua.rx[1:]
		if len(ua.rx) == 0 {
			err = ua.line.Lower()
		}
	case UART_REG_STATUS:
		value = byte(ua.status())
	}

	return
}

// WriteByte writes to the register bank. Writing the data register transmits
// the byte; the status register and the high bytes ignore writes.
func (ua *Uart) WriteByte(offset uint32, value byte) (err error) {
	if offset >= UART_REG_SIZE {
		err = mem.ErrOutOfRange
		return
	}

	if offset != UART_REG_DATA {
		return
	}

	ua.mu.Lock()
	defer ua.mu.Unlock()

	if ua.out != nil {
		_, err = ua.out.Write([]byte{value})
	}

	return
}
