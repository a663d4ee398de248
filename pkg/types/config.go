// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GeometryConfig holds the crop and density settings shared by both passes.
type GeometryConfig struct {
	// SourceDPI is the horizontal resolution every source scan must report.
	// Pages measuring anything else fail the pass before any output is written.
	SourceDPI int `json:"source_dpi" yaml:"source_dpi"`

	// ArchiveDPI is the target density for the CBZ pass (default 600).
	ArchiveDPI int `json:"archive_dpi" yaml:"archive_dpi"`

	// PDFDPI is the target density for the printable PDF pass (default 300).
	PDFDPI int `json:"pdf_dpi" yaml:"pdf_dpi"`

	// Margin is the band, in pixels, shaved from the top-left and
	// bottom-right corners of every page before resizing.
	Margin int `json:"margin" yaml:"margin"`
}

// InputConfig holds source-discovery settings.
type InputConfig struct {
	// Glob is the filename pattern matched inside the source directory.
	Glob string `json:"glob" yaml:"glob"`
}

// OptimizerBackend identifies the PDF compression tool.
type OptimizerBackend string

const (
	OptimizerGhostscript OptimizerBackend = "ghostscript"
	OptimizerPdfcpu      OptimizerBackend = "pdfcpu"
)

// PDFConfig holds settings for the PDF conversion and compression steps.
type PDFConfig struct {
	// Optimizer selects the compression backend: ghostscript or pdfcpu.
	Optimizer OptimizerBackend `json:"optimizer" yaml:"optimizer"`

	// Quality is the Ghostscript distiller profile (default "prepress").
	// Ignored by the pdfcpu backend.
	Quality string `json:"quality" yaml:"quality"`
}

// ToolsConfig holds settings shared by all subprocess-backed tools.
type ToolsConfig struct {
	// Timeout bounds each external invocation. Zero means no bound, which
	// matches the historical behavior of the pipeline.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig holds settings for the build history catalog.
type CatalogConfig struct {
	// Enabled controls whether successful builds are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the catalog database.
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Geometry GeometryConfig `json:"geometry" yaml:"geometry"`
	Input    InputConfig    `json:"input" yaml:"input"`
	PDF      PDFConfig      `json:"pdf" yaml:"pdf"`
	Tools    ToolsConfig    `json:"tools" yaml:"tools"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}

// DefaultPipelineConfig returns the configuration the tool ships with:
// 600 dpi scans shaved by 36 pixels, a 600 dpi archive pass, and a 300 dpi
// PDF pass compressed with Ghostscript's prepress profile.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Geometry: GeometryConfig{
			SourceDPI:  600,
			ArchiveDPI: 600,
			PDFDPI:     300,
			Margin:     36,
		},
		Input: InputConfig{Glob: "*.png"},
		PDF: PDFConfig{
			Optimizer: OptimizerGhostscript,
			Quality:   "prepress",
		},
		Catalog: CatalogConfig{
			Enabled: true,
			Dir:     "catalog",
		},
	}
}
