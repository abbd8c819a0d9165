package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docvox/internal/a11y"
	"github.com/dgallion1/docvox/internal/describe"
	"github.com/dgallion1/docvox/internal/msgs"
	"github.com/dgallion1/docvox/internal/navigator"
	"github.com/dgallion1/docvox/internal/parser"
	"github.com/dgallion1/docvox/internal/traverse"
)

type rootFlags struct {
	language   string
	verbosity  string
	skipClass  string
	lineLength int
	pdftotext  bool
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:          "docvox",
	Short:        "read documents the way a screen reader speaks them",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.language, "language", "en", "message language")
	pf.StringVar(&flags.verbosity, "verbosity", "verbose", "description verbosity: brief or verbose")
	pf.StringVar(&flags.skipClass, "skip-class", a11y.DefaultSkipClass, "class marking subtrees that are never read")
	pf.IntVar(&flags.lineLength, "line-length", 60, "characters per line for line granularity")
	pf.BoolVar(&flags.pdftotext, "pdftotext", true, "fall back to pdftotext for unreadable PDFs")
}

// openFile parses path and returns a navigator positioned at its start.
func openFile(path string) (*navigator.Navigator, error) {
	p, err := parser.ForFile(path, parser.Options{PDFFallbackPdftotext: flags.pdftotext})
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := p.Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	catalog, err := msgs.New(flags.language)
	if err != nil {
		return nil, err
	}
	verbosity, err := describe.ParseVerbosity(flags.verbosity)
	if err != nil {
		return nil, err
	}
	if flags.lineLength <= 0 {
		return nil, fmt.Errorf("line length must be positive, got %d", flags.lineLength)
	}

	opts := traverse.DefaultOptions()
	opts.LineLength = flags.lineLength
	return navigator.New(doc, catalog, navigator.Settings{
		Verbosity: verbosity,
		Options:   opts,
		SkipClass: flags.skipClass,
	}), nil
}
