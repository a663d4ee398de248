// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/scanpress/internal/bookfile"
	"github.com/pdiddy/scanpress/internal/booklet"
	"github.com/pdiddy/scanpress/internal/catalog"
	"github.com/pdiddy/scanpress/internal/tools"
	"github.com/pdiddy/scanpress/pkg/types"
)

// newPipeline wires the subprocess-backed tools and the optional catalog
// into a booklet pipeline. The returned closer releases the catalog.
func newPipeline(cfg types.PipelineConfig, log zerolog.Logger) (*booklet.Pipeline, func(), error) {
	magick, err := tools.DetectMagick(cfg.Tools.Timeout, log)
	if err != nil {
		return nil, nil, err
	}

	var optimizer booklet.PDFOptimizer
	switch cfg.PDF.Optimizer {
	case types.OptimizerGhostscript, "":
		optimizer = tools.NewGhostscript(cfg.PDF.Quality, cfg.Tools.Timeout, log)
	case types.OptimizerPdfcpu:
		optimizer = tools.NewPdfcpuOptimizer(log)
	default:
		return nil, nil, fmt.Errorf("unknown pdf optimizer %q (want ghostscript or pdfcpu)", cfg.PDF.Optimizer)
	}

	toolset := booklet.Tools{
		Probe:     magick,
		Transform: magick,
		Archiver:  tools.NewZipArchiver(cfg.Tools.Timeout, log),
		Converter: tools.NewImg2PDF(cfg.Tools.Timeout, log),
		Optimizer: optimizer,
	}

	var recorder booklet.Recorder
	closer := func() {}
	if cfg.Catalog.Enabled {
		store, err := catalog.Open(cfg.Catalog.Dir)
		if err != nil {
			log.Warn().Err(err).Msg("catalog unavailable, builds will not be recorded")
		} else {
			recorder = store
			closer = func() { store.Close() }
		}
	}

	return booklet.New(toolset, cfg, recorder, log), closer, nil
}

// buildRequest reads the shared build/archive/pdf flags into a Request.
// A --book metadata file supplies title and author; explicit flags win.
func buildRequest(cmd *cobra.Command, args []string) (booklet.Request, error) {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	keepStaging, _ := cmd.Flags().GetBool("keep-staging")
	bookPath, _ := cmd.Flags().GetString("book")

	if bookPath != "" {
		book, err := bookfile.Read(bookPath)
		if err != nil {
			return booklet.Request{}, err
		}
		if title == "" {
			title = book.DisplayTitle()
		}
		if author == "" {
			author = book.Author
		}
	}
	if title == "" {
		return booklet.Request{}, fmt.Errorf("a title is required: pass --title or --book")
	}

	return booklet.Request{
		SourceDir:   args[0],
		Title:       title,
		Author:      author,
		OutputDir:   outputDir,
		KeepStaging: keepStaging,
	}, nil
}

// addBuildFlags registers the flags shared by build, archive, and pdf.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "booklet title, used to name the outputs")
	cmd.Flags().StringP("author", "a", "", "author embedded in the PDF metadata")
	cmd.Flags().String("book", "", "YAML metadata file supplying title and author")
	cmd.Flags().String("output-dir", ".", "directory receiving the outputs")
	cmd.Flags().Bool("keep-staging", false, "keep staging directories for inspection")
}
