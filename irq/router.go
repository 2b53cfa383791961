// Package irq routes level transitions on a fixed array of interrupt lines
// to a single target's assert/deassert inputs.
//
// Lines are level-triggered: only a false-to-true transition asserts and only
// a true-to-false transition deasserts; re-signaling the current level is a
// no-op. This models the single shared interrupt request line of a simple
// microcontroller, with fan-in decided by which line a peripheral is given.
package irq

import (
	"sync"
)

// Target receives interrupt level transitions. It is held as a capability
// reference; the router never owns it.
type Target interface {
	AssertHardwareInterrupt()
	DeassertHardwareInterrupt()
}

// Router owns the line-level state for a fixed number of lines bound to one
// target. Signal may be called from a peripheral's goroutine after bring-up,
// so the level array sits behind a mutex.
type Router struct {
	mu     sync.Mutex
	level  []bool
	target Target
}

// Allocate creates a router with n lines bound to target.
func Allocate(n int, target Target) (rt *Router, err error) {
	if n <= 0 || target == nil {
		err = ErrAllocation
		return
	}

	rt = &Router{
		level:  make([]bool, n),
		target: target,
	}

	return
}

// Lines returns the number of allocated lines.
func (rt *Router) Lines() int {
	return len(rt.level)
}

// Signal records the new level of a line. A rising edge invokes the target's
// assert exactly once, a falling edge its deassert exactly once; signaling
// the current level again invokes nothing. An index outside [0, n) fails
// with ErrLineIndex and alters no line.
func (rt *Router) Signal(index int, level bool) (err error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if index < 0 || index >= len(rt.level) {
		err = ErrLineIndex
		return
	}

	prev := rt.level[index]
	rt.level[index] = level

	switch {
	case level && !prev:
		rt.target.AssertHardwareInterrupt()
	case !level && prev:
		rt.target.DeassertHardwareInterrupt()
	}

	return
}

// Level reports the current level of a line.
func (rt *Router) Level(index int) (level bool, err error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if index < 0 || index >= len(rt.level) {
		err = ErrLineIndex
		return
	}

	level = rt.level[index]

	return
}

// Line returns a bound handle for one line, for handing to a peripheral.
func (rt *Router) Line(index int) (ln *Line, err error) {
	if index < 0 || index >= len(rt.level) {
		err = ErrLineIndex
		return
	}

	ln = &Line{router: rt, index: index}

	return
}

// Line is a single-line capability handle held by a peripheral.
type Line struct {
	router *Router
	index  int
}

// Index returns the line's index in its router.
func (ln *Line) Index() int {
	return ln.index
}

// Set signals the line to the given level.
func (ln *Line) Set(level bool) error {
	return ln.router.Signal(ln.index, level)
}

// Raise signals the line high.
func (ln *Line) Raise() error {
	return ln.router.Signal(ln.index, true)
}

// Lower signals the line low.
func (ln *Line) Lower() error {
	return ln.router.Signal(ln.index, false)
}
