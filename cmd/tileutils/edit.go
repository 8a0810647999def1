package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"

	"github.com/eak1mov/go-libtilemap/flood"
	"github.com/eak1mov/go-libtilemap/history"
	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/google/subcommands"
)

func findLayer(layers []namedLayer, name string) (namedLayer, error) {
	for _, l := range layers {
		if name == "" || l.Name == name {
			return l, nil
		}
	}
	return namedLayer{}, fmt.Errorf("layer not found: %q", name)
}

// parseTileID converts a -tile flag value, rejecting values outside int32.
func parseTileID(value int) (tile.ID, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return tile.Empty, fmt.Errorf("tile ID out of range: %d", value)
	}
	return tile.ID(value), nil
}

type fillCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
	layerName   string
	row         int
	column      int
	tileID      int
	simple      bool
}

func (c *fillCmd) Name() string     { return "fill" }
func (c *fillCmd) Synopsis() string { return "flood fill a region of a tile layer" }
func (c *fillCmd) Usage() string {
	return "tileutils fill -i <path> -o <path> -row <n> -col <n> -tile <id> [-layer <name>] [-simple]\n"
}
func (c *fillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (tmx, yaml)")
	f.StringVar(&c.outputPath, "o", "", "Output layer document path")
	f.StringVar(&c.layerName, "layer", "", "Layer name, first layer by default")
	f.IntVar(&c.row, "row", 0, "Start row")
	f.IntVar(&c.column, "col", 0, "Start column")
	f.IntVar(&c.tileID, "tile", 0, "Replacement tile ID")
	f.BoolVar(&c.simple, "simple", false, "Use the queue-based fill")
}

func (c *fillCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	layers, format, err := loadLayers(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	target, err := findLayer(layers, c.layerName)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	start := tile.Position{Row: c.row, Column: c.column}
	replacement, err := parseTileID(c.tileID)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	var affected []tile.Position
	if c.simple {
		flood.FillSimple(target.Tiles, start, replacement, &affected)
	} else {
		_, affected = history.Fill(target.Tiles, start, replacement)
	}
	slog.Info("filled", "layer", target.Name, "start", start, "affected", len(affected))

	if err := writeDocument(c.outputPath, layers, format, nil); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

type resizeCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
	layerName   string
	rows        int
	columns     int
}

func (c *resizeCmd) Name() string     { return "resize" }
func (c *resizeCmd) Synopsis() string { return "change the extent of tile layers" }
func (c *resizeCmd) Usage() string {
	return "tileutils resize -i <path> -o <path> -rows <n> -cols <n> [-layer <name>]\n"
}
func (c *resizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (tmx, yaml)")
	f.StringVar(&c.outputPath, "o", "", "Output layer document path")
	f.StringVar(&c.layerName, "layer", "", "Layer name, all layers by default")
	f.IntVar(&c.rows, "rows", 0, "Row count")
	f.IntVar(&c.columns, "cols", 0, "Column count")
}

func (c *resizeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	layers, format, err := loadLayers(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	extent := tile.Extent{Rows: c.rows, Columns: c.columns}
	for _, l := range layers {
		if c.layerName != "" && l.Name != c.layerName {
			continue
		}
		old := l.Tiles.Extent()
		if err := l.Tiles.SetExtent(extent); err != nil {
			log.Printf("layer %q: %v", l.Name, err)
			return subcommands.ExitFailure
		}
		slog.Debug("resized", "layer", l.Name, "from", old, "to", extent)
	}

	if err := writeDocument(c.outputPath, layers, format, nil); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
