// Package mem implements the flat address space of an emulated board and the
// byte stores mapped into it.
//
// An AddressSpace dispatches byte and word accesses to Regions mapped at
// fixed bases; mapping is rejected if two regions would overlap. Flash is a
// fixed-capacity store that is loaded once with a firmware image and sealed
// read-only; Sram is a zero-initialized read-write store. Peripherals map
// into the same space by implementing Region themselves.
package mem
