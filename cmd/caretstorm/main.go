// Package main is the entry point for the caretstorm editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dshills/caretstorm/internal/config"
	"github.com/dshills/caretstorm/internal/editor"
	"github.com/dshills/caretstorm/internal/engine/codec"
	"github.com/dshills/caretstorm/internal/engine/linestore"
	"github.com/dshills/caretstorm/internal/engine/measure"
	"github.com/dshills/caretstorm/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ed := cfg.Editor()
	st := cfg.Storage()

	doc, cdc, err := open(opts.path, st.AdvisedBlockLines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	surfOpts := []editor.Option{
		editor.WithMeasurer(measure.NewMonospace(ed.TabWidth)),
		editor.WithOverwrite(ed.Overwrite),
	}
	if e := ed.Ending(); e != linestore.EndingNone {
		surfOpts = append(surfOpts, editor.WithLineEnding(e))
	}
	surface := editor.New(doc, surfOpts...)
	if ed.Ending() == linestore.EndingNone {
		picked := surface.AutoDetectLineEnding()
		cr, lf, crlf := linestore.CountEndings(doc)
		log.Printf("detected line ending %v (cr=%d lf=%d crlf=%d)", picked, cr, lf, crlf)
	}

	view, err := term.NewView(surface, term.Options{
		TabWidth: ed.TabWidth,
		Title:    titleFor(opts.path),
		OnSave: func() error {
			return save(doc, cdc, opts.path)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer view.Close()

	if err := view.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	path       string
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var writeConfig string

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&writeConfig, "write-config", "", "Write the default configuration to the given path and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Caretstorm - multi-caret text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: caretstorm [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Caretstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if writeConfig != "" {
		if err := config.WriteDefault(writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	opts.path = flag.Arg(0)
	return opts
}

// open loads the given file into a document, sniffing the encoding from
// its byte order mark. No path, or a path that does not exist yet, gives
// an empty UTF-8 document.
func open(path string, advised int) (*linestore.Document, codec.Codec, error) {
	var cdc codec.Codec = codec.UTF8{}
	if path == "" {
		return linestore.New(linestore.WithAdvisedLines(advised)), cdc, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return linestore.New(linestore.WithAdvisedLines(advised)), cdc, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	cdc = codec.ForBOM(data)
	doc, err := linestore.Load(data, cdc, linestore.WithAdvisedLines(advised))
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return doc, cdc, nil
}

func save(doc *linestore.Document, cdc codec.Codec, path string) error {
	if path == "" {
		return fmt.Errorf("no file name")
	}
	data, err := doc.Save(cdc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func titleFor(path string) string {
	if path == "" {
		return "[No Name]"
	}
	return path
}
