package irq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countTarget records assert/deassert invocations in order.
type countTarget struct {
	asserts   int
	deasserts int
	order     []string
}

func (ct *countTarget) AssertHardwareInterrupt() {
	ct.asserts++
	ct.order = append(ct.order, "assert")
}

func (ct *countTarget) DeassertHardwareInterrupt() {
	ct.deasserts++
	ct.order = append(ct.order, "deassert")
}

func TestAllocate(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}

	rt, err := Allocate(32, ct)
	assert.NoError(err)
	assert.Equal(32, rt.Lines())

	_, err = Allocate(0, ct)
	assert.ErrorIs(err, ErrAllocation)
	_, err = Allocate(-1, ct)
	assert.ErrorIs(err, ErrAllocation)
	_, err = Allocate(4, nil)
	assert.ErrorIs(err, ErrAllocation)
}

func TestRouter_RisingEdge(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}
	rt, err := Allocate(32, ct)
	assert.NoError(err)

	err = rt.Signal(0, true)
	assert.NoError(err)
	assert.Equal(1, ct.asserts)

	// Same level again is a no-op.
	err = rt.Signal(0, true)
	assert.NoError(err)
	assert.Equal(1, ct.asserts)
	assert.Equal(0, ct.deasserts)
}

func TestRouter_FallingEdge(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}
	rt, err := Allocate(32, ct)
	assert.NoError(err)

	err = rt.Signal(0, true)
	assert.NoError(err)
	err = rt.Signal(0, false)
	assert.NoError(err)

	assert.Equal(1, ct.asserts)
	assert.Equal(1, ct.deasserts)
	assert.Equal([]string{"assert", "deassert"}, ct.order)

	// Deassert of an already-low line is a no-op.
	err = rt.Signal(0, false)
	assert.NoError(err)
	assert.Equal(1, ct.deasserts)
}

func TestRouter_IndependentLines(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}
	rt, err := Allocate(4, ct)
	assert.NoError(err)

	err = rt.Signal(1, true)
	assert.NoError(err)
	err = rt.Signal(2, true)
	assert.NoError(err)
	assert.Equal(2, ct.asserts)

	level, err := rt.Level(1)
	assert.NoError(err)
	assert.True(level)
	level, err = rt.Level(0)
	assert.NoError(err)
	assert.False(level)
}

func TestRouter_InvalidIndex(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}
	rt, err := Allocate(4, ct)
	assert.NoError(err)

	err = rt.Signal(4, true)
	assert.ErrorIs(err, ErrLineIndex)
	err = rt.Signal(-1, true)
	assert.ErrorIs(err, ErrLineIndex)

	// A rejected signal alters no line.
	assert.Equal(0, ct.asserts)
	for index := range 4 {
		level, err := rt.Level(index)
		assert.NoError(err)
		assert.False(level)
	}

	_, err = rt.Level(4)
	assert.ErrorIs(err, ErrLineIndex)
	_, err = rt.Line(4)
	assert.ErrorIs(err, ErrLineIndex)
}

func TestLine_Handle(t *testing.T) {
	assert := assert.New(t)

	ct := &countTarget{}
	rt, err := Allocate(32, ct)
	assert.NoError(err)

	ln, err := rt.Line(0)
	assert.NoError(err)
	assert.Equal(0, ln.Index())

	assert.NoError(ln.Raise())
	assert.NoError(ln.Raise())
	assert.NoError(ln.Lower())
	assert.Equal(1, ct.asserts)
	assert.Equal(1, ct.deasserts)

	assert.NoError(ln.Set(true))
	assert.Equal(2, ct.asserts)
}
