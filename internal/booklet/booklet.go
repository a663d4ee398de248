// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package booklet orchestrates the full pipeline: discover pages, run the
// crop-scale pass at archive density into a CBZ, run it again at PDF density
// into a rasterized and compressed PDF, and record the build.
package booklet

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scanpress/internal/geometry"
	"github.com/pdiddy/scanpress/internal/page"
	"github.com/pdiddy/scanpress/internal/stage"
	"github.com/pdiddy/scanpress/pkg/types"
)

// Archiver packs an ordered list of staged pages into a zip archive.
type Archiver interface {
	Zip(files []string, outPath string) error
}

// PDFConverter rasterizes ordered page images into a PDF with metadata.
type PDFConverter interface {
	Convert(images []string, outPath, title, author string) error
}

// PDFOptimizer rewrites a PDF with a compression profile.
type PDFOptimizer interface {
	Optimize(src, dst string) error
}

// Recorder persists a build record after a successful run.
type Recorder interface {
	Record(rec types.BuildRecord) error
}

// Tools groups the external collaborators the pipeline drives.
type Tools struct {
	Probe     geometry.Probe
	Transform stage.Transform
	Archiver  Archiver
	Converter PDFConverter
	Optimizer PDFOptimizer
}

// Request describes one booklet build.
type Request struct {
	SourceDir   string
	Title       string
	Author      string
	OutputDir   string // defaults to the working directory
	KeepStaging bool   // keep staging directories for inspection
}

// Pipeline builds booklets from scan directories.
type Pipeline struct {
	tools    Tools
	cfg      types.PipelineConfig
	recorder Recorder // nil disables the catalog
	log      zerolog.Logger
}

// New wires a pipeline. recorder may be nil.
func New(tools Tools, cfg types.PipelineConfig, recorder Recorder, log zerolog.Logger) *Pipeline {
	return &Pipeline{tools: tools, cfg: cfg, recorder: recorder, log: log}
}

// Build produces <title>.cbz and <title>.pdf in the request's output
// directory. Staging lives under one temporary root, removed on every exit
// path unless the request keeps it.
func (p *Pipeline) Build(req Request) (types.BuildRecord, error) {
	pages, root, cleanup, err := p.prepare(req)
	if err != nil {
		return types.BuildRecord{}, err
	}
	defer cleanup()

	cbzPath, err := p.archivePass(pages, root, req)
	if err != nil {
		return types.BuildRecord{}, err
	}
	pdfPath, err := p.pdfPass(pages, root, req)
	if err != nil {
		return types.BuildRecord{}, err
	}

	rec := types.BuildRecord{
		Title:      req.Title,
		Author:     req.Author,
		Pages:      len(pages),
		SourceDir:  req.SourceDir,
		CBZPath:    cbzPath,
		PDFPath:    pdfPath,
		ArchiveDPI: p.cfg.Geometry.ArchiveDPI,
		PDFDPI:     p.cfg.Geometry.PDFDPI,
		CreatedAt:  time.Now().UTC(),
	}
	p.record(rec)

	p.log.Info().Str("cbz", cbzPath).Str("pdf", pdfPath).Int("pages", len(pages)).Msg("booklet built")
	return rec, nil
}

// Archive runs only the full-density pass and produces <title>.cbz.
func (p *Pipeline) Archive(req Request) (types.BuildRecord, error) {
	pages, root, cleanup, err := p.prepare(req)
	if err != nil {
		return types.BuildRecord{}, err
	}
	defer cleanup()

	cbzPath, err := p.archivePass(pages, root, req)
	if err != nil {
		return types.BuildRecord{}, err
	}

	rec := types.BuildRecord{
		Title:      req.Title,
		Author:     req.Author,
		Pages:      len(pages),
		SourceDir:  req.SourceDir,
		CBZPath:    cbzPath,
		ArchiveDPI: p.cfg.Geometry.ArchiveDPI,
		CreatedAt:  time.Now().UTC(),
	}
	p.record(rec)
	return rec, nil
}

// PDF runs only the reduced-density pass and produces <title>.pdf.
func (p *Pipeline) PDF(req Request) (types.BuildRecord, error) {
	pages, root, cleanup, err := p.prepare(req)
	if err != nil {
		return types.BuildRecord{}, err
	}
	defer cleanup()

	pdfPath, err := p.pdfPass(pages, root, req)
	if err != nil {
		return types.BuildRecord{}, err
	}

	rec := types.BuildRecord{
		Title:     req.Title,
		Author:    req.Author,
		Pages:     len(pages),
		SourceDir: req.SourceDir,
		PDFPath:   pdfPath,
		PDFDPI:    p.cfg.Geometry.PDFDPI,
		CreatedAt: time.Now().UTC(),
	}
	p.record(rec)
	return rec, nil
}

// prepare discovers pages and creates the staging root. The returned cleanup
// removes the root unless the request keeps it.
func (p *Pipeline) prepare(req Request) ([]types.Page, string, func(), error) {
	if req.Title == "" {
		return nil, "", nil, fmt.Errorf("title is required")
	}

	pages, err := page.Discover(req.SourceDir, p.cfg.Input.Glob)
	if err != nil {
		return nil, "", nil, err
	}

	root, err := os.MkdirTemp("", "scanpress-*")
	if err != nil {
		return nil, "", nil, fmt.Errorf("creating staging root: %w", err)
	}

	cleanup := func() {
		if req.KeepStaging {
			p.log.Info().Str("dir", root).Msg("staging kept")
			return
		}
		if err := os.RemoveAll(root); err != nil {
			p.log.Warn().Err(err).Str("dir", root).Msg("staging cleanup failed")
		}
	}
	return pages, root, cleanup, nil
}

func (p *Pipeline) archivePass(pages []types.Page, root string, req Request) (string, error) {
	dir, err := p.stagePass(pages, root, "archive", p.cfg.Geometry.ArchiveDPI)
	if err != nil {
		return "", err
	}
	staged, err := stagedFiles(dir)
	if err != nil {
		return "", err
	}

	out := p.outputPath(req, req.Title+".cbz")
	if err := p.tools.Archiver.Zip(staged, out); err != nil {
		return "", fmt.Errorf("archiving %s: %w", out, err)
	}
	return out, nil
}

func (p *Pipeline) pdfPass(pages []types.Page, root string, req Request) (string, error) {
	dir, err := p.stagePass(pages, root, "pdf", p.cfg.Geometry.PDFDPI)
	if err != nil {
		return "", err
	}
	staged, err := stagedFiles(dir)
	if err != nil {
		return "", err
	}

	raw := filepath.Join(root, "booklet-raw.pdf")
	if err := p.tools.Converter.Convert(staged, raw, req.Title, req.Author); err != nil {
		return "", fmt.Errorf("rasterizing %s: %w", raw, err)
	}

	out := p.outputPath(req, req.Title+".pdf")
	if err := p.tools.Optimizer.Optimize(raw, out); err != nil {
		return "", fmt.Errorf("compressing %s: %w", out, err)
	}
	return out, nil
}

// stagePass creates a fresh uuid-named staging directory under root and runs
// one crop-scale pass into it. Each pass owns its directory exclusively.
func (p *Pipeline) stagePass(pages []types.Page, root, label string, density int) (string, error) {
	dir := filepath.Join(root, label+"-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}

	params := stage.Params{
		Density:     density,
		Margin:      p.cfg.Geometry.Margin,
		ExpectedDPI: p.cfg.Geometry.SourceDPI,
	}
	if err := stage.Run(p.tools.Probe, p.tools.Transform, pages, dir, params, p.log); err != nil {
		return "", err
	}
	return dir, nil
}

func (p *Pipeline) outputPath(req Request, name string) string {
	if req.OutputDir == "" {
		return name
	}
	return filepath.Join(req.OutputDir, name)
}

// record persists the build when a recorder is wired. Catalog failures are
// warnings: the outputs already exist.
func (p *Pipeline) record(rec types.BuildRecord) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.Record(rec); err != nil {
		p.log.Warn().Err(err).Str("title", rec.Title).Msg("catalog record failed")
	}
}

// stagedFiles lists a staging directory in lexicographic order, which equals
// page order because basenames are zero-padded.
func stagedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing staging directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
