// Package tmx imports the tile layers of Tiled TMX maps.
//
// Flip and rotation flags are dropped: imported matrices hold global tile
// IDs only.
package tmx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/lafriks/go-tiled"
)

var ErrNoTileLayers = errors.New("libtilemap: map has no tile layers")

// Layer is an imported tile layer.
type Layer struct {
	Name  string
	Tiles *layer.TileMatrix
}

type loaderConfig struct {
	FileSystem fs.FS
	Logger     *slog.Logger
}

type LoaderOption func(*loaderConfig)

// WithFileSystem loads the map and its external tilesets from fsys instead
// of the operating system.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(c *loaderConfig) { c.FileSystem = fsys }
}

func WithLogger(logger *slog.Logger) LoaderOption {
	return func(c *loaderConfig) { c.Logger = logger }
}

// Load reads the TMX map at path and returns its tile layers in file order.
func Load(path string, opts ...LoaderOption) ([]Layer, error) {
	config := loaderConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var tiledOpts []tiled.LoaderOption
	if config.FileSystem != nil {
		tiledOpts = append(tiledOpts, tiled.WithFileSystem(config.FileSystem))
	}

	config.Logger.Debug("libtilemap: loading map", "path", path)
	m, err := tiled.LoadFile(path, tiledOpts...)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	extent := tile.Extent{Rows: m.Height, Columns: m.Width}
	layers := make([]Layer, 0, len(m.Layers))
	for _, l := range m.Layers {
		matrix, err := convertLayer(l, extent)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		config.Logger.Debug("libtilemap: loaded layer", "name", l.Name, "extent", extent)
		layers = append(layers, Layer{Name: l.Name, Tiles: matrix})
	}

	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTileLayers, path)
	}

	return layers, nil
}

func convertLayer(l *tiled.Layer, extent tile.Extent) (*layer.TileMatrix, error) {
	matrix, err := layer.New(extent)
	if err != nil {
		return nil, err
	}

	if got, want := len(l.Tiles), extent.Cells(); got != want {
		return nil, fmt.Errorf("%d tiles, want %d", got, want)
	}

	for i, t := range l.Tiles {
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}
		gid := t.Tileset.FirstGID + t.ID
		matrix.SetTile(tile.PositionFromIndex(i, extent.Columns), tile.ID(int32(gid)))
	}

	return matrix, nil
}
