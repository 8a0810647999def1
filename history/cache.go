// Package history records tile values around layer mutations so they can
// be undone and redone.
package history

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/google/hilbert"
)

// Cache maps positions to the tile values they held when captured.
type Cache struct {
	tiles map[tile.Position]tile.ID
}

func NewCache() *Cache {
	return &Cache{tiles: make(map[tile.Position]tile.ID)}
}

// Record captures the current value of each position inside the layer.
// Positions already in the cache keep their first captured value.
func (c *Cache) Record(r tile.Reader, positions ...tile.Position) {
	for _, pos := range positions {
		if _, cached := c.tiles[pos]; cached {
			continue
		}
		if id, ok := r.TileAt(pos); ok {
			c.tiles[pos] = id
		}
	}
}

// Snapshot captures the rectangle of the given extent at origin. Cells
// outside the layer are skipped.
func (c *Cache) Snapshot(r tile.Reader, origin tile.Position, extent tile.Extent) {
	for pos := range tile.IterRegion(origin, extent) {
		c.Record(r, pos)
	}
}

// Set stores id for pos, replacing any captured value.
func (c *Cache) Set(pos tile.Position, id tile.ID) {
	c.tiles[pos] = id
}

func (c *Cache) TileAt(pos tile.Position) (tile.ID, bool) {
	id, ok := c.tiles[pos]
	return id, ok
}

func (c *Cache) Len() int {
	return len(c.tiles)
}

func (c *Cache) Clear() {
	clear(c.tiles)
}

// Restore writes every captured value back to the layer and returns the
// positions it wrote, in Positions order, for the caller to redraw.
func (c *Cache) Restore(w tile.Writer) []tile.Position {
	restored := make([]tile.Position, 0, len(c.tiles))
	for _, pos := range c.Positions() {
		if w.SetTile(pos, c.tiles[pos]) {
			restored = append(restored, pos)
		}
	}
	return restored
}

// Positions returns the cached positions ordered along a Hilbert curve
// covering them, so consecutive positions are spatially close and a
// renderer can invalidate them in batches of nearby cells. Sets holding a
// negative position are ordered row-major instead.
func (c *Cache) Positions() []tile.Position {
	positions := make([]tile.Position, 0, len(c.tiles))
	side := 1
	for pos := range c.tiles {
		positions = append(positions, pos)
		side = max(side, pos.Row+1, pos.Column+1)
	}

	h, err := hilbert.NewHilbert(1 << bits.Len(uint(side-1)))
	if err != nil {
		slices.SortFunc(positions, compareRowMajor)
		return positions
	}

	codes := make(map[tile.Position]int, len(positions))
	for _, pos := range positions {
		code, err := h.MapInverse(pos.Column, pos.Row)
		if err != nil {
			slices.SortFunc(positions, compareRowMajor)
			return positions
		}
		codes[pos] = code
	}

	slices.SortFunc(positions, func(a, b tile.Position) int {
		return cmp.Compare(codes[a], codes[b])
	})
	return positions
}

func compareRowMajor(a, b tile.Position) int {
	return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column))
}
