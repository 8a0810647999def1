package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eak1mov/go-libtilemap/codec"
	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/eak1mov/go-libtilemap/tmx"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown input format")

func deduceFormat(format, filePath string) string {
	if format == "" && strings.HasSuffix(filePath, ".tmx") {
		return "tmx"
	}
	if format == "" && (strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml")) {
		return "yaml"
	}
	return format
}

// document is the layer file written and read by tileutils.
type document struct {
	TileFormat codec.TileFormat `yaml:"tile-format"`
	Layers     []documentLayer  `yaml:"layers"`
}

type documentLayer struct {
	Name    string `yaml:"name"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Data    string `yaml:"data"`
}

type namedLayer struct {
	Name  string
	Tiles layer.Layer
}

// loadLayers reads the tile layers of a TMX map or a layer document.
func loadLayers(format, filePath string) ([]namedLayer, codec.TileFormat, error) {
	switch deduceFormat(format, filePath) {
	case "tmx":
		imported, err := tmx.Load(filePath, tmx.WithLogger(slog.Default()))
		if err != nil {
			return nil, codec.TileFormat{}, err
		}
		layers := make([]namedLayer, 0, len(imported))
		for _, l := range imported {
			layers = append(layers, namedLayer{Name: l.Name, Tiles: l.Tiles})
		}
		return layers, codec.TileFormat{}, nil
	case "yaml":
		return readDocument(filePath)
	}
	return nil, codec.TileFormat{}, fmt.Errorf("%w: %s", errUnknownFormat, filePath)
}

func readDocument(filePath string) ([]namedLayer, codec.TileFormat, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, codec.TileFormat{}, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, codec.TileFormat{}, fmt.Errorf("parse %s: %w", filePath, err)
	}

	layers := make([]namedLayer, 0, len(doc.Layers))
	for _, dl := range doc.Layers {
		extent := tile.Extent{Rows: dl.Rows, Columns: dl.Columns}
		m, err := codec.Decode(dl.Data, extent, doc.TileFormat, codec.IDFormatTactile)
		if err != nil {
			return nil, codec.TileFormat{}, fmt.Errorf("layer %q: %w", dl.Name, err)
		}
		layers = append(layers, namedLayer{Name: dl.Name, Tiles: m})
	}

	return layers, doc.TileFormat, nil
}

func writeDocument(filePath string, layers []namedLayer, format codec.TileFormat, onLayer func()) error {
	doc := document{TileFormat: format}
	for _, l := range layers {
		text, err := codec.Encode(l.Tiles, format)
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Name, err)
		}
		extent := l.Tiles.Extent()
		doc.Layers = append(doc.Layers, documentLayer{
			Name:    l.Name,
			Rows:    extent.Rows,
			Columns: extent.Columns,
			Data:    text,
		})
		if onLayer != nil {
			onLayer()
		}
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// parseTileFormat builds a tile format from flag values, or reads it from
// a YAML file holding a tile-format map when formatPath is set.
func parseTileFormat(encodingName, compressionName string, level int, formatPath string) (codec.TileFormat, error) {
	if formatPath != "" {
		data, err := os.ReadFile(formatPath)
		if err != nil {
			return codec.TileFormat{}, err
		}
		var format codec.TileFormat
		if err := yaml.Unmarshal(data, &format); err != nil {
			return codec.TileFormat{}, fmt.Errorf("parse %s: %w", formatPath, err)
		}
		return format, nil
	}

	encoding, err := codec.ParseEncoding(encodingName)
	if err != nil {
		return codec.TileFormat{}, err
	}
	compression, err := codec.ParseCompression(compressionName)
	if err != nil {
		return codec.TileFormat{}, err
	}

	format := codec.TileFormat{Encoding: encoding, Compression: compression}
	if level != codec.DefaultCompressionLevel {
		format.Level = &level
	}
	return format, format.Validate()
}
