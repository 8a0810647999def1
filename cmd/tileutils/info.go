package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-libtilemap/tile"
	"github.com/google/subcommands"
)

type infoCmd struct {
	inputFormat string
	inputPath   string
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print tile layers summary" }
func (c *infoCmd) Usage() string {
	return "tileutils info -i <path> [-if <format>]\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (tmx, yaml)")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	layers, format, err := loadLayers(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("format: %s/%s\n", format.Encoding, format.Compression)
	for _, l := range layers {
		used := 0
		for id := range tile.IterIDs(l.Tiles) {
			if id != tile.Empty {
				used++
			}
		}
		fmt.Printf("%s: %v, %d non-empty\n", l.Name, l.Tiles.Extent(), used)
	}

	return subcommands.ExitSuccess
}
