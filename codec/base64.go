package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// EncodeBase64 encodes the native byte stream of the layer as Base64 after
// compressing it with the default level of compression.
func EncodeBase64(l layer.Layer, compression Compression) (string, error) {
	return EncodeBase64Level(l, compression, DefaultCompressionLevel)
}

func EncodeBase64Level(l layer.Layer, compression Compression, level int) (string, error) {
	data, err := Compress(ToByteStream(l), compression, level)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeBase64 decodes text produced by EncodeBase64, or by Tiled when
// format is IDFormatTiled. Whitespace within text is ignored.
func DecodeBase64(text string, extent tile.Extent, compression Compression, format IDFormat) (*layer.TileMatrix, error) {
	cells, err := decodedCells(extent)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	data, err = DecompressLimit(data, compression, cells*cellSize)
	if err != nil {
		return nil, err
	}

	return FromByteStream(data, extent, format)
}
