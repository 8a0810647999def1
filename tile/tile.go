// Package tile provides common tile layer types: tile identifiers,
// grid positions and grid extents.
package tile

import "fmt"

// ID identifies a tile graphic. Empty denotes a cell with no tile.
type ID int32

// Empty is the identifier stored in cells that hold no tile.
const Empty ID = 0

// Position is a (row, column) coordinate into a tile grid.
// Positions may be negative or lie outside any grid.
type Position struct {
	Row    int
	Column int
}

func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Column: p.Column + other.Column}
}

func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Column: p.Column - other.Column}
}

func (p Position) North() Position { return Position{Row: p.Row - 1, Column: p.Column} }
func (p Position) South() Position { return Position{Row: p.Row + 1, Column: p.Column} }
func (p Position) East() Position  { return Position{Row: p.Row, Column: p.Column + 1} }
func (p Position) West() Position  { return Position{Row: p.Row, Column: p.Column - 1} }

// PositionFromIndex converts a row-major linear index into a position.
func PositionFromIndex(index, columnCount int) Position {
	return Position{Row: index / columnCount, Column: index % columnCount}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Extent is the shape of a tile grid.
type Extent struct {
	Rows    int
	Columns int
}

// Valid reports whether the extent describes at least a 1x1 grid.
func (e Extent) Valid() bool {
	return e.Rows >= 1 && e.Columns >= 1
}

// Contains reports whether pos lies inside [0, Rows) x [0, Columns).
func (e Extent) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < e.Rows && pos.Column >= 0 && pos.Column < e.Columns
}

// Cells returns the total number of cells.
func (e Extent) Cells() int {
	return e.Rows * e.Columns
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%d", e.Rows, e.Columns)
}

// Reader reads single tiles from a grid.
type Reader interface {
	// TileAt returns the tile at pos, or false if pos is outside the grid.
	TileAt(pos Position) (ID, bool)
}

// Writer writes single tiles to a grid.
type Writer interface {
	// SetTile stores id at pos. It reports false, and does nothing, if pos
	// is outside the grid.
	SetTile(pos Position, id ID) bool
}

type Visitor interface {
	// VisitTiles visits every cell of the grid in row-major order, calling
	// the visitor for each. It stops at and returns the first visitor error.
	VisitTiles(visitor func(Position, ID) error) error
}
