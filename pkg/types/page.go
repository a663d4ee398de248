// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Page is a single source scan image. Pages are discovered once at startup
// and immutable afterwards; there is exactly one Page per input file.
type Page struct {
	// SourcePath is the absolute path to the input image.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Index is the ordering key extracted from the filename: the integer
	// value of the first maximal run of decimal digits, or 0 when the
	// filename contains no digits.
	Index int `json:"index" yaml:"index"`

	// Basename is the canonical zero-padded output name
	// (e.g. "page-001.png"), chosen so lexicographic order equals page order.
	Basename string `json:"basename" yaml:"basename"`
}

// GeometryDetails holds the measured and computed parameters for one page
// at one target density.
type GeometryDetails struct {
	// Resolution is the measured horizontal resolution in dots per inch.
	Resolution int `json:"resolution" yaml:"resolution"`

	// Density is the target output density in dots per inch.
	Density int `json:"density" yaml:"density"`

	// ResizePercent is the percentage resize reaching Density from
	// Resolution, truncated toward zero.
	ResizePercent int `json:"resize_percent" yaml:"resize_percent"`
}

// BuildRecord summarizes one completed booklet build for the catalog.
type BuildRecord struct {
	Title      string    `json:"title" yaml:"title"`
	Author     string    `json:"author,omitempty" yaml:"author,omitempty"`
	Pages      int       `json:"pages" yaml:"pages"`
	SourceDir  string    `json:"source_dir" yaml:"source_dir"`
	CBZPath    string    `json:"cbz_path,omitempty" yaml:"cbz_path,omitempty"`
	PDFPath    string    `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`
	ArchiveDPI int       `json:"archive_dpi" yaml:"archive_dpi"`
	PDFDPI     int       `json:"pdf_dpi" yaml:"pdf_dpi"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
