package layer_test

import (
	"testing"

	"github.com/eak1mov/go-libtilemap/internal"
	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/stretchr/testify/require"
)

func TestSparseMatrix(t *testing.T) {
	_, err := layer.NewSparse(tile.Extent{Rows: 0, Columns: 3})
	require.ErrorIs(t, err, layer.ErrInvalidExtent)

	s, err := layer.NewSparse(tile.Extent{Rows: 4, Columns: 4})
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())

	require.True(t, s.SetTile(tile.Position{Row: 3, Column: 3}, 5))
	require.True(t, s.SetTile(tile.Position{Row: 0, Column: 0}, 6))
	require.False(t, s.SetTile(tile.Position{Row: 4, Column: 0}, 7))
	require.Equal(t, 2, s.Len())

	id, ok := s.TileAt(tile.Position{Row: 1, Column: 1})
	require.True(t, ok)
	require.Equal(t, tile.Empty, id)
	_, ok = s.TileAt(tile.Position{Row: -1, Column: 1})
	require.False(t, ok)

	require.True(t, s.SetTile(tile.Position{Row: 0, Column: 0}, tile.Empty))
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.SetExtent(tile.Extent{Rows: 2, Columns: 2}))
	require.Equal(t, 0, s.Len())
	require.ErrorIs(t, s.SetExtent(tile.Extent{Rows: 2, Columns: 0}), layer.ErrInvalidExtent)
	require.Equal(t, tile.Extent{Rows: 2, Columns: 2}, s.Extent())
}

func TestSparseVisitOrder(t *testing.T) {
	s, err := layer.NewSparse(tile.Extent{Rows: 2, Columns: 2})
	require.NoError(t, err)
	s.SetTile(tile.Position{Row: 1, Column: 0}, 3)

	var positions []tile.Position
	for pos := range tile.IterTiles(s) {
		positions = append(positions, pos)
	}
	require.Equal(t, []tile.Position{
		{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 1, Column: 0}, {Row: 1, Column: 1},
	}, positions)
}

func TestDenseSparseConversion(t *testing.T) {
	dense := internal.PatternMatrix(t, tile.Extent{Rows: 5, Columns: 7})

	sparse := layer.ToSparse(dense)
	require.True(t, layer.Equal(dense, sparse))

	back := layer.ToDense(sparse)
	require.True(t, layer.Equal(dense, back))

	// Conversions copy.
	sparse.SetTile(tile.Position{Row: 0, Column: 1}, 500)
	require.False(t, layer.Equal(dense, sparse))
	require.True(t, layer.Equal(dense, back))
}

func TestLayerEditsOnSparse(t *testing.T) {
	s, err := layer.NewSparse(tile.Extent{Rows: 1, Columns: 1})
	require.NoError(t, err)
	require.NoError(t, layer.AddRow(s))
	require.NoError(t, layer.AddColumn(s))
	require.Equal(t, tile.Extent{Rows: 2, Columns: 2}, s.Extent())
	require.NoError(t, layer.RemoveRow(s))
	require.ErrorIs(t, layer.RemoveRow(s), layer.ErrInvalidExtent)
}
