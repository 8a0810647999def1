package history

import (
	"github.com/eak1mov/go-libtilemap/flood"
	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// Edit is an undoable change to a single layer. It holds tile values only
// and is applied to whichever layer the caller passes in.
type Edit struct {
	before      *Cache
	after       *Cache
	oldExtent   tile.Extent
	newExtent   tile.Extent
	resizesGrid bool
}

// SetTiles writes id to every position and returns the edit.
func SetTiles(l layer.Layer, id tile.ID, positions ...tile.Position) *Edit {
	e := &Edit{before: NewCache(), after: NewCache()}
	e.before.Record(l, positions...)
	for _, pos := range positions {
		if l.SetTile(pos, id) {
			e.after.Set(pos, id)
		}
	}
	return e
}

// Fill flood fills the layer from start and returns the edit together with
// the affected positions.
func Fill(l layer.Layer, start tile.Position, replacement tile.ID) (*Edit, []tile.Position) {
	e := &Edit{before: NewCache(), after: NewCache()}
	targetID, ok := l.TileAt(start)
	if !ok {
		return e, nil
	}

	var affected []tile.Position
	flood.Fill(l, start, replacement, &affected)
	for _, pos := range affected {
		e.before.Set(pos, targetID)
		e.after.Set(pos, replacement)
	}
	return e, affected
}

// Resize changes the extent of the layer, keeping a snapshot of every cell
// so that undoing a shrink restores the removed cells.
func Resize(l layer.Layer, extent tile.Extent) (*Edit, error) {
	e := &Edit{
		before:      NewCache(),
		oldExtent:   l.Extent(),
		newExtent:   extent,
		resizesGrid: true,
	}
	e.before.Snapshot(l, tile.Position{}, e.oldExtent)
	if err := l.SetExtent(extent); err != nil {
		return nil, err
	}
	return e, nil
}

// Undo reverts the edit on l.
func (e *Edit) Undo(l layer.Layer) error {
	if e.resizesGrid {
		if err := l.SetExtent(e.oldExtent); err != nil {
			return err
		}
	}
	e.before.Restore(l)
	return nil
}

// Redo applies the edit to l again after Undo.
func (e *Edit) Redo(l layer.Layer) error {
	if e.resizesGrid {
		return l.SetExtent(e.newExtent)
	}
	e.after.Restore(l)
	return nil
}

// Len returns the number of cells the edit restores on Undo.
func (e *Edit) Len() int {
	return e.before.Len()
}
