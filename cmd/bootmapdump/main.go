// Command bootmapdump decodes a raw firmware descriptor-table dump, builds
// the canonical memory map from it, and prints one line per region. It runs
// the same conversion and normalization the boot path runs, so a dump that
// fails here would also halt a real boot.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/bootkit/bootmap"
	"github.com/joshuapare/bootkit/cmd/bootmapdump/logger"
	"github.com/joshuapare/bootkit/internal/e820"
	"github.com/joshuapare/bootkit/internal/mmfile"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	})

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printUsage()
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("loading descriptor table dump", "path", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open dump: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("error unmapping dump", "error", err)
		}
	}()

	// Record count defaults to whatever fits in the file.
	count := len(data) / e820.DescriptorSize
	if len(filteredArgs) > 1 {
		count, err = strconv.Atoi(filteredArgs[1])
		if err != nil || count < 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid record count %q\n", filteredArgs[1])
			os.Exit(1)
		}
	}
	logger.Debug("decoding table", "bytes", len(data), "records", count)

	m, err := bootmap.ParseMap(data, count)
	if err != nil {
		logger.Error("memory map construction failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printMap(&m)
	logger.Info("done", "regions", m.Len(), "usable_bytes", m.TotalUsable())
}

// printMap writes the canonical map as a table, one region per line.
// Byte counts are grouped per the English locale so multi-gigabyte regions
// stay readable.
func printMap(m *bootmap.Map) {
	p := message.NewPrinter(language.English)
	for i, r := range m.Regions() {
		p.Printf("#%02d  [%#012x-%#012x)  %14d bytes  %s\n",
			i, r.Range.Start.Address(), r.Range.End.Address(), r.Range.Size(), r.Type)
	}
	p.Printf("total usable: %d bytes in %d regions\n", m.TotalUsable(), m.Len())
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: bootmapdump [--debug] <table.bin> [count]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Decodes a raw firmware memory descriptor dump (24-byte records),")
	fmt.Fprintln(os.Stderr, "normalizes it, and prints the resulting memory map.")
}
