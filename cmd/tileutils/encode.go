package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-libtilemap/codec"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type encodeCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
	formatPath  string
	encoding    string
	compression string
	level       int
}

func (c *encodeCmd) Name() string     { return "encode" }
func (c *encodeCmd) Synopsis() string { return "write tile layers as a layer document" }
func (c *encodeCmd) Usage() string {
	return "tileutils encode -i <path> -o <path> [-encoding <name>] [-compression <name>] [-level <n>] [-format <path>]\n"
}
func (c *encodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (tmx, yaml)")
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.formatPath, "format", "", "YAML file with tile format, overrides other format flags")
	f.StringVar(&c.encoding, "encoding", "base64", "Tile encoding (plain, base64)")
	f.StringVar(&c.compression, "compression", "zlib", "Compression (none, zlib, zstd)")
	f.IntVar(&c.level, "level", codec.DefaultCompressionLevel, "Compression level")
}

func (c *encodeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	format, err := parseTileFormat(c.encoding, c.compression, c.level, c.formatPath)
	if err != nil {
		log.Println("invalid tile format:", err)
		return subcommands.ExitFailure
	}

	layers, _, err := loadLayers(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(len(layers), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	err = writeDocument(c.outputPath, layers, format, func() { bar.Add(1) })
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
