// Package codec converts tile layers to and from the representations used
// by map files: raw little-endian byte streams, Base64 text with optional
// zlib or zstd compression, whitespace separated plain text, CSV and
// per-tile XML nodes.
//
// Decoding never returns a partial matrix: on failure the matrix is nil and
// the error wraps one of the sentinel errors below.
package codec

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

var (
	ErrInvalidFormat           = errors.New("libtilemap: invalid tile format")
	ErrBadTileLayerData        = errors.New("libtilemap: bad tile layer data")
	ErrUnsupportedTileEncoding = errors.New("libtilemap: unsupported tile encoding")
	ErrUnsupportedCompression  = errors.New("libtilemap: unsupported compression")
	ErrDecode                  = errors.New("libtilemap: base64 decode failed")
	ErrCompression             = errors.New("libtilemap: compression failed")
)

// MaxCells bounds the extent of decoded matrices. Extents come from map
// headers, so they are checked before anything is allocated for them.
const MaxCells = 1 << 26

// decodedCells returns the cell count of a matrix about to be decoded.
func decodedCells(extent tile.Extent) (int, error) {
	if !extent.Valid() {
		return 0, fmt.Errorf("%w: %v", layer.ErrInvalidExtent, extent)
	}
	if extent.Rows > MaxCells/extent.Columns {
		return 0, fmt.Errorf("%w: extent %v exceeds %d cells", ErrBadTileLayerData, extent, MaxCells)
	}
	return extent.Cells(), nil
}

// Encode encodes the layer as text according to format.
func Encode(l layer.Layer, format TileFormat) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}
	switch format.Encoding {
	case EncodingPlainText:
		return FormatPlainText(l), nil
	case EncodingBase64:
		return EncodeBase64Level(l, format.Compression, format.CompressionLevel())
	}
	return "", fmt.Errorf("%w: %v", ErrUnsupportedTileEncoding, format.Encoding)
}

// Decode is the inverse of Encode.
func Decode(text string, extent tile.Extent, format TileFormat, idFormat IDFormat) (*layer.TileMatrix, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	switch format.Encoding {
	case EncodingPlainText:
		return ParsePlainText(text, extent)
	case EncodingBase64:
		return DecodeBase64(text, extent, format.Compression, idFormat)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedTileEncoding, format.Encoding)
}
