// Package cpu models the processor handle a board configures during
// bring-up: the architectural register file, the boot state (program counter,
// stack pointer, mode, interrupt masks), and the reset lifecycle.
//
// The instruction-execution engine is an external collaborator. This package
// only establishes the state it starts from and latches the hardware
// interrupt input it samples.
package cpu
