// Package flood implements flood fill over tile layers.
//
// Both fills replace every cell reachable from the start position through a
// 4-connected path of cells sharing the start cell's value. Fill is a
// scanline implementation processing a horizontal run per queue entry;
// FillSimple visits one cell at a time and exists as a reference.
package flood

import (
	"github.com/eak1mov/go-libtilemap/tile"
)

// Target is the layer a fill operates on.
type Target interface {
	tile.Reader
	tile.Writer
}

// span is a run [minX, maxX] on row y whose neighbours on row y were
// already matched, scanned next in the vertical direction dy.
type span struct {
	minX, maxX int
	y, dy      int
}

type filler struct {
	target      Target
	targetID    tile.ID
	replacement tile.ID
	affected    *[]tile.Position
}

func (f *filler) inside(x, y int) bool {
	id, ok := f.target.TileAt(tile.Position{Row: y, Column: x})
	return ok && id == f.targetID
}

func (f *filler) set(x, y int) {
	pos := tile.Position{Row: y, Column: x}
	f.target.SetTile(pos, f.replacement)
	if f.affected != nil {
		*f.affected = append(*f.affected, pos)
	}
}

// Fill replaces the region connected to start with replacement.
// Every changed position is appended to affected when it is non-nil; each
// appears exactly once. Fill does nothing if start is outside the target
// or already holds replacement.
func Fill(target Target, start tile.Position, replacement tile.ID, affected *[]tile.Position) {
	targetID, ok := target.TileAt(start)
	if !ok || targetID == replacement {
		return
	}

	f := filler{target: target, targetID: targetID, replacement: replacement, affected: affected}
	x, y := start.Column, start.Row

	queue := []span{
		{minX: x, maxX: x, y: y, dy: 1},
		{minX: x, maxX: x, y: y - 1, dy: -1},
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		x1, x2 := s.minX, s.maxX
		x := x1

		if f.inside(x, s.y) {
			for f.inside(x-1, s.y) {
				f.set(x-1, s.y)
				x--
			}
			if x < x1 {
				queue = append(queue, span{minX: x, maxX: x1 - 1, y: s.y - s.dy, dy: -s.dy})
			}
		}

		for x1 <= x2 {
			for f.inside(x1, s.y) {
				f.set(x1, s.y)
				x1++
			}
			if x1 > x {
				queue = append(queue, span{minX: x, maxX: x1 - 1, y: s.y + s.dy, dy: s.dy})
			}
			if x1-1 > x2 {
				queue = append(queue, span{minX: x2 + 1, maxX: x1 - 1, y: s.y - s.dy, dy: -s.dy})
			}
			x1++
			for x1 < x2 && !f.inside(x1, s.y) {
				x1++
			}
			x = x1
		}
	}
}

// FillSimple has the same contract as Fill but grows the region one cell
// at a time through a FIFO queue of positions.
func FillSimple(target Target, start tile.Position, replacement tile.ID, affected *[]tile.Position) {
	targetID, ok := target.TileAt(start)
	if !ok || targetID == replacement {
		return
	}

	f := filler{target: target, targetID: targetID, replacement: replacement, affected: affected}

	f.set(start.Column, start.Row)
	queue := []tile.Position{start}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		for _, next := range [...]tile.Position{pos.North(), pos.South(), pos.East(), pos.West()} {
			if f.inside(next.Column, next.Row) {
				f.set(next.Column, next.Row)
				queue = append(queue, next)
			}
		}
	}
}
