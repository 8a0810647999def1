package layer

import (
	"maps"

	"github.com/eak1mov/go-libtilemap/tile"
)

// SparseMatrix is a tile layer that stores only non-empty cells.
type SparseMatrix struct {
	extent tile.Extent
	tiles  map[tile.Position]tile.ID
}

var _ Layer = (*SparseMatrix)(nil)

// NewSparse creates an all-empty sparse layer of the given extent.
func NewSparse(extent tile.Extent) (*SparseMatrix, error) {
	if err := validateExtent(extent); err != nil {
		return nil, err
	}
	return newSparse(extent), nil
}

func newSparse(extent tile.Extent) *SparseMatrix {
	return &SparseMatrix{extent: extent, tiles: make(map[tile.Position]tile.ID)}
}

func (s *SparseMatrix) Extent() tile.Extent {
	return s.extent
}

func (s *SparseMatrix) TileAt(pos tile.Position) (tile.ID, bool) {
	if !s.extent.Contains(pos) {
		return tile.Empty, false
	}
	return s.tiles[pos], true
}

func (s *SparseMatrix) SetTile(pos tile.Position, id tile.ID) bool {
	if !s.extent.Contains(pos) {
		return false
	}
	if id == tile.Empty {
		delete(s.tiles, pos)
	} else {
		s.tiles[pos] = id
	}
	return true
}

func (s *SparseMatrix) SetExtent(extent tile.Extent) error {
	if extent == s.extent {
		return nil
	}
	if err := validateExtent(extent); err != nil {
		return err
	}
	maps.DeleteFunc(s.tiles, func(pos tile.Position, _ tile.ID) bool {
		return !extent.Contains(pos)
	})
	s.extent = extent
	return nil
}

// Len returns the number of non-empty cells.
func (s *SparseMatrix) Len() int {
	return len(s.tiles)
}

func (s *SparseMatrix) Clone() *SparseMatrix {
	return &SparseMatrix{extent: s.extent, tiles: maps.Clone(s.tiles)}
}

// VisitTiles visits every cell, empty ones included, in row-major order.
func (s *SparseMatrix) VisitTiles(visitor func(tile.Position, tile.ID) error) error {
	for r := range s.extent.Rows {
		for c := range s.extent.Columns {
			pos := tile.Position{Row: r, Column: c}
			if err := visitor(pos, s.tiles[pos]); err != nil {
				return err
			}
		}
	}
	return nil
}
