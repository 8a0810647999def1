package tmx

import (
	"fmt"

	"github.com/eak1mov/go-libtilemap/codec"
	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// Data is the <data> element of a TMX tile layer.
type Data struct {
	Encoding    string           `xml:"encoding,attr,omitempty"`
	Compression string           `xml:"compression,attr,omitempty"`
	Text        string           `xml:",chardata"`
	Tiles       []codec.TileNode `xml:"tile"`
}

// DecodeData decodes the element into a matrix of the given extent,
// also returning the tile format it was stored with. Base64 data is read
// with IDFormatTiled, so flag bits are cleared.
func DecodeData(d Data, extent tile.Extent) (*layer.TileMatrix, codec.TileFormat, error) {
	switch d.Encoding {
	case "":
		m, err := codec.ParseTileNodes(d.Tiles, extent)
		return m, codec.TileFormat{}, err

	case "csv":
		m, err := codec.ParseCSV(d.Text, extent)
		return m, codec.TileFormat{}, err

	case "base64":
		compression, err := codec.ParseCompression(d.Compression)
		if err != nil {
			return nil, codec.TileFormat{}, err
		}
		format := codec.TileFormat{Encoding: codec.EncodingBase64, Compression: compression}
		m, err := codec.DecodeBase64(d.Text, extent, compression, codec.IDFormatTiled)
		if err != nil {
			return nil, codec.TileFormat{}, err
		}
		return m, format, nil
	}

	return nil, codec.TileFormat{}, fmt.Errorf("%w: %q", codec.ErrUnsupportedTileEncoding, d.Encoding)
}

// EncodeData is the inverse of DecodeData. Plain-text formats produce CSV.
func EncodeData(l layer.Layer, format codec.TileFormat) (Data, error) {
	if err := format.Validate(); err != nil {
		return Data{}, err
	}
	if format.Encoding == codec.EncodingPlainText {
		return Data{Encoding: "csv", Text: codec.FormatCSV(l)}, nil
	}

	text, err := codec.EncodeBase64Level(l, format.Compression, format.CompressionLevel())
	if err != nil {
		return Data{}, err
	}
	d := Data{Encoding: "base64", Text: text}
	if format.Compression != codec.CompressionNone {
		d.Compression = format.Compression.String()
	}
	return d, nil
}
