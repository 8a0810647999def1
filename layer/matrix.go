package layer

import (
	"iter"
	"slices"

	"github.com/eak1mov/go-libtilemap/tile"
)

// TileMatrix is a dense, row-major tile layer.
// Every row always holds exactly Extent().Columns cells.
type TileMatrix struct {
	extent tile.Extent
	rows   [][]tile.ID
}

var _ Layer = (*TileMatrix)(nil)

// New creates a matrix of the given extent filled with tile.Empty.
func New(extent tile.Extent) (*TileMatrix, error) {
	if err := validateExtent(extent); err != nil {
		return nil, err
	}
	return newMatrix(extent), nil
}

// NewSize is New with the dimensions given separately.
func NewSize(rows, columns int) (*TileMatrix, error) {
	return New(tile.Extent{Rows: rows, Columns: columns})
}

func newMatrix(extent tile.Extent) *TileMatrix {
	rows := make([][]tile.ID, extent.Rows)
	for i := range rows {
		rows[i] = make([]tile.ID, extent.Columns)
	}
	return &TileMatrix{extent: extent, rows: rows}
}

func (m *TileMatrix) Extent() tile.Extent {
	return m.extent
}

func (m *TileMatrix) TileAt(pos tile.Position) (tile.ID, bool) {
	if !m.extent.Contains(pos) {
		return tile.Empty, false
	}
	return m.rows[pos.Row][pos.Column], true
}

func (m *TileMatrix) SetTile(pos tile.Position, id tile.ID) bool {
	if !m.extent.Contains(pos) {
		return false
	}
	m.rows[pos.Row][pos.Column] = id
	return true
}

func (m *TileMatrix) SetExtent(extent tile.Extent) error {
	if extent == m.extent {
		return nil
	}
	if err := validateExtent(extent); err != nil {
		return err
	}

	if colDelta := extent.Columns - m.extent.Columns; colDelta > 0 {
		m.addColumns(colDelta)
	} else if colDelta < 0 {
		m.removeColumns(-colDelta)
	}

	if rowDelta := extent.Rows - m.extent.Rows; rowDelta > 0 {
		m.addRows(rowDelta, extent.Columns)
	} else if rowDelta < 0 {
		m.removeRows(-rowDelta)
	}

	m.extent = extent
	return nil
}

func (m *TileMatrix) addColumns(n int) {
	for i := range m.rows {
		m.rows[i] = append(m.rows[i], make([]tile.ID, n)...)
	}
}

func (m *TileMatrix) removeColumns(n int) {
	for i := range m.rows {
		if len(m.rows[i])-n < 1 {
			panic("libtilemap: cannot remove last column")
		}
		m.rows[i] = m.rows[i][:len(m.rows[i])-n]
	}
}

func (m *TileMatrix) addRows(n, columns int) {
	m.rows = slices.Grow(m.rows, n)
	for range n {
		m.rows = append(m.rows, make([]tile.ID, columns))
	}
}

func (m *TileMatrix) removeRows(n int) {
	if len(m.rows)-n < 1 {
		panic("libtilemap: cannot remove last row")
	}
	clear(m.rows[len(m.rows)-n:])
	m.rows = m.rows[:len(m.rows)-n]
}

// Clone returns a deep copy that shares no storage with m.
func (m *TileMatrix) Clone() *TileMatrix {
	rows := make([][]tile.ID, len(m.rows))
	for i, row := range m.rows {
		rows[i] = slices.Clone(row)
	}
	return &TileMatrix{extent: m.extent, rows: rows}
}

// Rows returns a deep copy of the matrix contents.
func (m *TileMatrix) Rows() [][]tile.ID {
	return m.Clone().rows
}

// Each returns an iterator over every tile identifier in row-major order.
// The matrix must not be mutated during iteration.
func (m *TileMatrix) Each() iter.Seq[tile.ID] {
	return func(yield func(tile.ID) bool) {
		for _, row := range m.rows {
			for _, id := range row {
				if !yield(id) {
					return
				}
			}
		}
	}
}

func (m *TileMatrix) VisitTiles(visitor func(tile.Position, tile.ID) error) error {
	for r, row := range m.rows {
		for c, id := range row {
			if err := visitor(tile.Position{Row: r, Column: c}, id); err != nil {
				return err
			}
		}
	}
	return nil
}
