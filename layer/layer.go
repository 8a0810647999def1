// Package layer provides mutable tile layers: a dense row-major TileMatrix
// and a map-backed SparseMatrix sharing the same contract.
//
// Point access is lenient: reading outside the layer reports no value and
// writing outside the layer does nothing. Construction and resizing with a
// non-positive dimension fail with ErrInvalidExtent and leave the layer as
// it was.
package layer

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-libtilemap/tile"
)

var ErrInvalidExtent = errors.New("libtilemap: invalid extent")

// Layer is a rectangular grid of tile identifiers.
type Layer interface {
	tile.Reader
	tile.Writer
	tile.Visitor

	Extent() tile.Extent

	// SetExtent resizes the layer, adding or removing columns at the right
	// and rows at the bottom. New cells are tile.Empty.
	SetExtent(extent tile.Extent) error
}

func validateExtent(extent tile.Extent) error {
	if !extent.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidExtent, extent)
	}
	return nil
}

// AddRow appends an empty row at the bottom of the layer.
func AddRow(l Layer) error {
	e := l.Extent()
	return l.SetExtent(tile.Extent{Rows: e.Rows + 1, Columns: e.Columns})
}

// AddColumn appends an empty column at the right of the layer.
func AddColumn(l Layer) error {
	e := l.Extent()
	return l.SetExtent(tile.Extent{Rows: e.Rows, Columns: e.Columns + 1})
}

// RemoveRow drops the bottom row. It fails if the layer has a single row.
func RemoveRow(l Layer) error {
	e := l.Extent()
	return l.SetExtent(tile.Extent{Rows: e.Rows - 1, Columns: e.Columns})
}

// RemoveColumn drops the rightmost column. It fails if the layer has a
// single column.
func RemoveColumn(l Layer) error {
	e := l.Extent()
	return l.SetExtent(tile.Extent{Rows: e.Rows, Columns: e.Columns - 1})
}

// ToDense copies any layer into a new TileMatrix.
func ToDense(l Layer) *TileMatrix {
	if m, ok := l.(*TileMatrix); ok {
		return m.Clone()
	}
	m := newMatrix(l.Extent())
	for pos, id := range tile.IterTiles(l) {
		m.rows[pos.Row][pos.Column] = id
	}
	return m
}

// ToSparse copies any layer into a new SparseMatrix.
func ToSparse(l Layer) *SparseMatrix {
	if s, ok := l.(*SparseMatrix); ok {
		return s.Clone()
	}
	s := newSparse(l.Extent())
	for pos, id := range tile.IterTiles(l) {
		s.SetTile(pos, id)
	}
	return s
}

// Equal reports whether two layers have the same extent and cell values.
func Equal(a, b Layer) bool {
	if a.Extent() != b.Extent() {
		return false
	}
	for pos, id := range tile.IterTiles(a) {
		if other, _ := b.TileAt(pos); other != id {
			return false
		}
	}
	return true
}
