package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles returns an iterator over all cells of the grid in row-major order.
// Iteration panics if the visitor reports an error other than cancellation.
func IterTiles(v Visitor) iter.Seq2[Position, ID] {
	return func(yield func(Position, ID) bool) {
		err := v.VisitTiles(func(pos Position, id ID) error {
			if !yield(pos, id) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// IterIDs is like IterTiles but yields tile identifiers only.
func IterIDs(v Visitor) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range IterTiles(v) {
			if !yield(id) {
				return
			}
		}
	}
}

// IterRegion returns an iterator over every position of the rectangle of
// the given extent whose top-left corner is origin, in row-major order.
func IterRegion(origin Position, extent Extent) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := range extent.Rows {
			for col := range extent.Columns {
				if !yield(origin.Add(Position{Row: row, Column: col})) {
					return
				}
			}
		}
	}
}
