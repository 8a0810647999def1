package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&infoCmd{}, "")
	subcommands.Register(&encodeCmd{}, "")
	subcommands.Register(&decodeCmd{}, "")
	subcommands.Register(&fillCmd{}, "editing")
	subcommands.Register(&resizeCmd{}, "editing")

	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
