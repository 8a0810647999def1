package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// IDFormat selects how the 32-bit cells of a byte stream map to tile IDs.
type IDFormat uint8

const (
	// IDFormatTactile stores the signed tile ID as is.
	IDFormatTactile IDFormat = iota
	// IDFormatTiled stores flip and rotation flags in the top four bits.
	IDFormatTiled
)

// Tiled flag bits.
const (
	FlippedHorizontallyBit uint32 = 1 << 31
	FlippedVerticallyBit   uint32 = 1 << 30
	FlippedDiagonallyBit   uint32 = 1 << 29
	RotatedHexagonal120Bit uint32 = 1 << 28

	TileFlippingMask = FlippedHorizontallyBit | FlippedVerticallyBit | FlippedDiagonallyBit | RotatedHexagonal120Bit
)

const cellSize = 4

// ToByteStream serializes the layer row-major, four little-endian bytes per cell.
func ToByteStream(l layer.Layer) []byte {
	buffer := make([]byte, 0, l.Extent().Cells()*cellSize)
	for _, id := range tile.IterTiles(l) {
		buffer = binary.LittleEndian.AppendUint32(buffer, uint32(id))
	}
	return buffer
}

// WriteByteStream writes the byte stream of the layer to writer.
func WriteByteStream(l layer.Layer, writer io.Writer) error {
	row := make([]int32, 0, l.Extent().Columns)
	return l.VisitTiles(func(_ tile.Position, id tile.ID) error {
		row = append(row, int32(id))
		if len(row) < l.Extent().Columns {
			return nil
		}
		err := binary.Write(writer, binary.LittleEndian, row)
		row = row[:0]
		return err
	})
}

// FromByteStream deserializes a matrix of the given extent. The stream must
// hold exactly one cell per position.
func FromByteStream(data []byte, extent tile.Extent, format IDFormat) (*layer.TileMatrix, error) {
	cells, err := decodedCells(extent)
	if err != nil {
		return nil, err
	}

	if got, want := len(data), cells*cellSize; got != want {
		return nil, fmt.Errorf("%w: byte stream length %d, want %d for %v", ErrBadTileLayerData, got, want, extent)
	}

	m, err := layer.New(extent)
	if err != nil {
		return nil, err
	}

	for i := range cells {
		raw := binary.LittleEndian.Uint32(data[i*cellSize:])
		if format == IDFormatTiled {
			raw &^= TileFlippingMask
		}
		m.SetTile(tile.PositionFromIndex(i, extent.Columns), tile.ID(int32(raw)))
	}

	return m, nil
}
