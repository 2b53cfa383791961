package board

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/lpcboard/boarddef"
)

// Constructor brings up one kind of board.
type Constructor func(opts Options) (*Board, error)

// Catalog is an explicit registry of board constructors. A host constructs a
// catalog and populates it deliberately; there is no process-wide
// self-registration.
type Catalog struct {
	boards map[string]Constructor
}

// NewCatalog creates an empty catalog.
func NewCatalog() (ct *Catalog) {
	ct = &Catalog{
		boards: map[string]Constructor{},
	}

	return
}

// Register adds a board constructor under a name. Duplicate names fail.
func (ct *Catalog) Register(name string, con Constructor) (err error) {
	if _, ok := ct.boards[name]; ok {
		err = ErrBoardDuplicate(name)
		return
	}

	ct.boards[name] = con

	return
}

// RegisterDefinition registers a constructor that brings up the given
// definition.
func (ct *Catalog) RegisterDefinition(def boarddef.Definition) (err error) {
	return ct.Register(def.Name, func(opts Options) (*Board, error) {
		return BringUp(def, opts)
	})
}

// BringUp brings up the named board.
func (ct *Catalog) BringUp(name string, opts Options) (bd *Board, err error) {
	con, ok := ct.boards[name]
	if !ok {
		err = ErrBoardUnknown(name)
		return
	}

	return con(opts)
}

// Names yields the registered board names in sorted order.
func (ct *Catalog) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(ct.boards)))
}

// RegisterBuiltin populates a catalog with the boards shipped in this module.
func RegisterBuiltin(ct *Catalog) (err error) {
	return ct.RegisterDefinition(boarddef.Default())
}
