// Package internal holds helpers shared by the package tests.
package internal

import (
	"testing"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// MatrixFromRows builds a matrix from literal rows, which must be rectangular.
func MatrixFromRows(t testing.TB, rows [][]tile.ID) *layer.TileMatrix {
	t.Helper()

	if len(rows) == 0 {
		t.Fatal("MatrixFromRows: no rows")
	}
	m, err := layer.NewSize(len(rows), len(rows[0]))
	if err != nil {
		t.Fatal(err)
	}
	for r, row := range rows {
		if got, want := len(row), len(rows[0]); got != want {
			t.Fatalf("MatrixFromRows: len(rows[%d]) = %v, want = %v", r, got, want)
		}
		for c, id := range row {
			m.SetTile(tile.Position{Row: r, Column: c}, id)
		}
	}
	return m
}

// FilledMatrix returns a matrix of the given extent with every cell set to id.
func FilledMatrix(t testing.TB, extent tile.Extent, id tile.ID) *layer.TileMatrix {
	t.Helper()

	m, err := layer.New(extent)
	if err != nil {
		t.Fatal(err)
	}
	for pos := range tile.IterRegion(tile.Position{}, extent) {
		m.SetTile(pos, id)
	}
	return m
}

// PatternMatrix returns a matrix whose cells hold distinct, mostly non-empty
// values derived from their position.
func PatternMatrix(t testing.TB, extent tile.Extent) *layer.TileMatrix {
	t.Helper()

	m, err := layer.New(extent)
	if err != nil {
		t.Fatal(err)
	}
	for pos := range tile.IterRegion(tile.Position{}, extent) {
		m.SetTile(pos, tile.ID((pos.Row*extent.Columns+pos.Column)%97))
	}
	return m
}
