package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encoding is the textual representation of tile data in a map file.
type Encoding uint8

const (
	EncodingPlainText Encoding = iota
	EncodingBase64
)

func (e Encoding) String() string {
	switch e {
	case EncodingPlainText:
		return "plain"
	case EncodingBase64:
		return "base64"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding parses an encoding name as found in map files.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "", "plain":
		return EncodingPlainText, nil
	case "base64":
		return EncodingBase64, nil
	}
	return EncodingPlainText, fmt.Errorf("%w: %q", ErrUnsupportedTileEncoding, name)
}

// TileFormat describes how the tile data of a map file is stored.
// Plain-text encoding cannot be combined with compression.
type TileFormat struct {
	Encoding    Encoding
	Compression Compression

	// Level is the compression level, nil for the library default.
	Level *int
}

func (f TileFormat) Validate() error {
	if f.Encoding == EncodingPlainText && f.Compression != CompressionNone {
		return fmt.Errorf("%w: %v encoding with %v compression", ErrInvalidFormat, f.Encoding, f.Compression)
	}
	return nil
}

// CompressionLevel returns Level, or DefaultCompressionLevel if it is unset.
func (f TileFormat) CompressionLevel() int {
	if f.Level == nil {
		return DefaultCompressionLevel
	}
	return *f.Level
}

// yamlTileFormat mirrors the "tile-format" map of the YAML map format.
type yamlTileFormat struct {
	Encoding    string `yaml:"encoding,omitempty"`
	Compression string `yaml:"compression,omitempty"`
	ZlibLevel   *int   `yaml:"zlib-compression-level,omitempty"`
	ZstdLevel   *int   `yaml:"zstd-compression-level,omitempty"`
}

func (f *TileFormat) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlTileFormat
	if err := node.Decode(&raw); err != nil {
		return err
	}

	encoding, err := ParseEncoding(raw.Encoding)
	if err != nil {
		return err
	}
	compression, err := ParseCompression(raw.Compression)
	if err != nil {
		return err
	}

	format := TileFormat{Encoding: encoding, Compression: compression}
	switch compression {
	case CompressionZlib:
		format.Level = raw.ZlibLevel
	case CompressionZstd:
		format.Level = raw.ZstdLevel
	}

	if err := format.Validate(); err != nil {
		return err
	}

	*f = format
	return nil
}

func (f TileFormat) MarshalYAML() (any, error) {
	raw := yamlTileFormat{Encoding: f.Encoding.String()}
	if f.Compression != CompressionNone {
		raw.Compression = f.Compression.String()
	}
	switch f.Compression {
	case CompressionZlib:
		raw.ZlibLevel = f.Level
	case CompressionZstd:
		raw.ZstdLevel = f.Level
	}
	return raw, nil
}
