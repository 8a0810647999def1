package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eak1mov/go-libtilemap/codec"
	"github.com/google/subcommands"
)

type decodeCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
	layerName   string
}

func (c *decodeCmd) Name() string     { return "decode" }
func (c *decodeCmd) Synopsis() string { return "print tile layers as CSV" }
func (c *decodeCmd) Usage() string {
	return "tileutils decode -i <path> [-o <path>] [-layer <name>]\n"
}
func (c *decodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (tmx, yaml)")
	f.StringVar(&c.outputPath, "o", "", "Output path, stdout by default")
	f.StringVar(&c.layerName, "layer", "", "Decode only the named layer")
}

func (c *decodeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	layers, _, err := loadLayers(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	output := os.Stdout
	if c.outputPath != "" {
		output, err = os.Create(c.outputPath)
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		defer output.Close()
	}

	w := bufio.NewWriter(output)
	found := false
	for _, l := range layers {
		if c.layerName != "" && l.Name != c.layerName {
			continue
		}
		found = true
		fmt.Fprintf(w, "# %s %v\n%s\n", l.Name, l.Tiles.Extent(), codec.FormatCSV(l.Tiles))
	}
	if err := w.Flush(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if !found {
		log.Printf("layer not found: %q", c.layerName)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
