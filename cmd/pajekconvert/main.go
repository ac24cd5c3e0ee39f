// SPDX-License-Identifier: MIT

// Command pajekconvert converts a delimited edge-list file to Pajek .net.
//
// Usage:
//
//	pajekconvert [flags] <input> <output>
//
// Column names default to the bibliometric convention (PaperId,
// PaperReferenceId). They may also come from the environment
// (PAJEK_CITING_COLNAME, PAJEK_CITED_COLNAME, PAJEK_WEIGHT_COLNAME, DEBUG),
// loaded from an optional .env file; explicit flags win.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/pajektools/edgelist"
	"github.com/katalvlaran/pajektools/pajek"
)

// CLI defaults for the citation-network workflow this tool grew out of.
// The library itself defaults to ID/cited_ID; the flag layer overrides.
const (
	defaultCitingColname = "PaperId"
	defaultCitedColname  = "PaperReferenceId"
)

func main() {
	_ = godotenv.Load()

	var (
		citingColname = flag.String("citing-colname", envString("PAJEK_CITING_COLNAME", defaultCitingColname), "column name for citing nodes")
		citedColname  = flag.String("cited-colname", envString("PAJEK_CITED_COLNAME", defaultCitedColname), "column name for cited nodes")
		weightColname = flag.String("weight-colname", envString("PAJEK_WEIGHT_COLNAME", pajek.DefaultWeightColumn), "column name for edge weights (used with --weighted)")
		weighted      = flag.Bool("weighted", false, "append the weight column to every edge line")
		undirected    = flag.Bool("undirected", false, "network is undirected (block header *Edges instead of *Arcs)")
		labelKind     = flag.String("label-kind", "text", "vertex label dtype: text or int")
		delimiter     = flag.String("delimiter", ",", `input field delimiter ("\t" for tabs)`)
		chunkSize     = flag.Int("chunk-size", pajek.DefaultChunkSize, "rows per write chunk")
		memoryLimit   = flag.Int64("memory-limit", 0, "chunk buffer budget in bytes (0 = off)")
		checkpoint    = flag.Bool("checkpoint", true, "salvage untranslated rows next to the output if the memory budget dies")
		debug         = flag.Bool("debug", envBool("DEBUG", false), "output debugging info")
	)
	flag.Usage = usage
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	logger.Debug("debug mode is on")
	logger.Debug("invoked", "argv", strings.Join(os.Args, " "))

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	var kind edgelist.Kind
	switch *labelKind {
	case "text":
		kind = edgelist.KindText
	case "int":
		kind = edgelist.KindInt
	default:
		logger.Fatal("invalid --label-kind, want text or int", "got", *labelKind)
	}
	comma, err := delimiterRune(*delimiter)
	if err != nil {
		logger.Fatal("invalid --delimiter", "err", err)
	}
	if *chunkSize < 1 {
		logger.Fatal("invalid --chunk-size, want a positive row count", "got", *chunkSize)
	}
	if *memoryLimit < 0 {
		logger.Fatal("invalid --memory-limit, want bytes >= 0", "got", *memoryLimit)
	}

	totalStart := time.Now()
	logger.Debug("input network", "directed", !*undirected)
	logger.Debug("using input", "path", input)

	start := time.Now()
	tbl, err := edgelist.ReadCSVFile(input, edgelist.WithComma(comma))
	if err != nil {
		logger.Fatal("loading input failed", "err", err)
	}
	logger.Info("edge list loaded",
		"rows", humanize.Comma(int64(tbl.NumRows())),
		"took", time.Since(start).Round(time.Millisecond))

	opts := []pajek.Option{
		pajek.WithCitingColumn(*citingColname),
		pajek.WithCitedColumn(*citedColname),
		pajek.WithWeightColumn(*weightColname),
		pajek.WithLabelKind(kind),
		pajek.WithChunkSize(*chunkSize),
		pajek.WithLogger(logger),
	}
	if *weighted {
		opts = append(opts, pajek.WithWeighted())
	}
	if *undirected {
		opts = append(opts, pajek.WithUndirected())
	}
	if *memoryLimit > 0 {
		opts = append(opts, pajek.WithMemoryLimit(*memoryLimit))
	}
	if *checkpoint {
		opts = append(opts, pajek.WithCheckpoint(filepath.Dir(output)))
	}

	// Index first: schema faults surface here, before the output exists.
	start = time.Now()
	ix, err := pajek.BuildIndex(tbl, opts...)
	if err != nil {
		logger.Fatal("building vertex index failed", "err", err)
	}
	logger.Info("vertex index built",
		"vertices", humanize.Comma(int64(ix.NumVertices())),
		"took", time.Since(start).Round(time.Millisecond))

	logger.Debug("writing to output", "path", output)
	start = time.Now()
	f, err := os.Create(output)
	if err != nil {
		logger.Fatal("creating output failed", "err", err)
	}
	if err = pajek.Write(f, tbl, ix, opts...); err != nil {
		f.Close()
		logger.Fatal("conversion failed", "err", err)
	}
	if err = f.Close(); err != nil {
		logger.Fatal("closing output failed", "err", err)
	}
	logger.Info("network written",
		"edges", humanize.Comma(int64(tbl.NumRows())),
		"took", time.Since(start).Round(time.Millisecond))

	logger.Info("all finished", "total_time", time.Since(totalStart).Round(time.Millisecond))
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <input> <output>\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(out, "Convert a delimited edge list to a Pajek .net file.")
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

// envString returns the environment value for key, or fallback when unset.
func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// envBool parses a strict true/false environment value, or fallback.
func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if v == "true" || v == "false" {
		return v == "true"
	}
	return fallback
}

// delimiterRune turns the --delimiter string into a field separator rune.
// The two-character literal "\t" is accepted for shells where typing a real
// tab is awkward.
func delimiterRune(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	return runes[0], nil
}
