package cpu

import (
	"fmt"
	"iter"
	"maps"
	"sync"
)

// Kind selects the processor model.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindArm7TDMI = Kind(iota) // arm7tdmi
	KindArm946                // arm946
)

// Register file indices for the architecturally named registers.
const (
	REG_SP = 13 // Stack pointer (r13)
	REG_LR = 14 // Link register (r14)
	REG_PC = 15 // Program counter (r15)
)

// CPSR mode and interrupt-mask fields.
const (
	MODE_USER = uint32(0x10) // Unprivileged user mode
	MODE_FIQ  = uint32(0x11) // Fast interrupt mode
	MODE_IRQ  = uint32(0x12) // Interrupt mode
	MODE_SVC  = uint32(0x13) // Supervisor mode
	MODE_MASK = uint32(0x1f) // Mode field of the CPSR

	CPSR_F = uint32(1 << 6) // FIQ disable
	CPSR_I = uint32(1 << 7) // IRQ disable
)

var _cpu_defines = map[string]string{
	"MODE_USER": fmt.Sprintf("0x%02x", MODE_USER),
	"MODE_SVC":  fmt.Sprintf("0x%02x", MODE_SVC),
	"CPSR_F":    fmt.Sprintf("0x%02x", CPSR_F),
	"CPSR_I":    fmt.Sprintf("0x%02x", CPSR_I),
}

// Boot lifecycle states.
type state int

const (
	stateCreated = state(iota)
	stateConfigured
	stateReset
)

// Cpu is the processor handle. The register file is public for the execution
// engine; the boot lifecycle is enforced through ConfigureBoot and Reset.
type Cpu struct {
	Register [16]uint32 // r0-r15; r13 = SP, r15 = PC.
	Cpsr     uint32     // Current program status register.

	kind  Kind
	state state

	mu        sync.Mutex
	pending   bool
	asserts   int
	deasserts int
}

// New creates a processor of the given kind with an implementation-default
// register file. Unknown kinds fail with ErrUnsupportedKind.
func New(kind Kind) (cpu *Cpu, err error) {
	switch kind {
	case KindArm7TDMI, KindArm946:
	default:
		err = ErrKindUnknown(kind.String())
		return
	}

	cpu = &Cpu{kind: kind}

	return
}

// KindOf looks up a processor kind by name.
func KindOf(name string) (kind Kind, err error) {
	for kind = KindArm7TDMI; kind <= KindArm946; kind++ {
		if kind.String() == name {
			return
		}
	}

	err = ErrKindUnknown(name)

	return
}

// Kind returns the processor model.
func (cpu *Cpu) Kind() Kind {
	return cpu.kind
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// ConfigureBoot writes the boot register state: PC, SP, the CPSR mode field,
// and both interrupt-mask bits. It may be called any number of times before
// Reset.
func (cpu *Cpu) ConfigureBoot(pc, sp, mode uint32, interruptsMasked bool) (err error) {
	switch mode {
	case MODE_USER, MODE_FIQ, MODE_IRQ, MODE_SVC:
	default:
		err = ErrModeInvalid
		return
	}

	cpu.Register[REG_PC] = pc
	cpu.Register[REG_SP] = sp
	cpu.Cpsr = mode
	if interruptsMasked {
		cpu.Cpsr |= CPSR_I | CPSR_F
	}
	cpu.state = stateConfigured

	return
}

// Reset runs the architectural reset entry. The explicitly configured boot
// registers (PC, SP, CPSR) survive reset; the scratch registers and the
// interrupt latch are cleared. Reset is only legal once the boot state has
// been configured.
func (cpu *Cpu) Reset() (err error) {
	if cpu.state == stateCreated {
		err = ErrNotConfigured
		return
	}

	for n := range cpu.Register {
		if n != REG_SP && n != REG_PC {
			cpu.Register[n] = 0
		}
	}

	cpu.mu.Lock()
	cpu.pending = false
	cpu.mu.Unlock()

	cpu.state = stateReset

	return
}

// Pc returns the current program counter.
func (cpu *Cpu) Pc() uint32 {
	return cpu.Register[REG_PC]
}

// Sp returns the current stack pointer.
func (cpu *Cpu) Sp() uint32 {
	return cpu.Register[REG_SP]
}

// Mode returns the CPSR mode field.
func (cpu *Cpu) Mode() uint32 {
	return cpu.Cpsr & MODE_MASK
}

// InterruptsMasked reports whether both the IRQ and FIQ disable bits are set.
func (cpu *Cpu) InterruptsMasked() bool {
	return cpu.Cpsr&(CPSR_I|CPSR_F) == CPSR_I|CPSR_F
}

// AssertHardwareInterrupt latches the hardware interrupt input high. The
// execution engine samples the latch between instructions.
func (cpu *Cpu) AssertHardwareInterrupt() {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	cpu.pending = true
	cpu.asserts++
}

// DeassertHardwareInterrupt latches the hardware interrupt input low.
func (cpu *Cpu) DeassertHardwareInterrupt() {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	cpu.pending = false
	cpu.deasserts++
}

// InterruptPending reports the current state of the interrupt latch.
func (cpu *Cpu) InterruptPending() bool {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	return cpu.pending
}

// InterruptEdges returns the assert and deassert edge counts since creation.
func (cpu *Cpu) InterruptEdges() (asserts, deasserts int) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	return cpu.asserts, cpu.deasserts
}

// String returns the boot-relevant register state.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("%v pc=0x%08x sp=0x%08x cpsr=0x%08x",
		cpu.kind, cpu.Pc(), cpu.Sp(), cpu.Cpsr)
}
