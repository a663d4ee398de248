// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog"
)

// PdfcpuOptimizer compresses a PDF in process with pdfcpu. It is the
// fallback backend for hosts without Ghostscript; the output is larger than
// a prepress redistill but needs no external binary.
type PdfcpuOptimizer struct {
	log zerolog.Logger
}

// NewPdfcpuOptimizer returns the in-process optimizer backend.
func NewPdfcpuOptimizer(log zerolog.Logger) *PdfcpuOptimizer {
	return &PdfcpuOptimizer{log: log}
}

// Optimize rewrites the PDF at src into an optimized copy at dst.
func (p *PdfcpuOptimizer) Optimize(src, dst string) error {
	if err := api.OptimizeFile(src, dst, nil); err != nil {
		return fmt.Errorf("optimizing %s with pdfcpu: %w", src, err)
	}
	p.log.Debug().Str("pdf", dst).Msg("pdf optimized in process")
	return nil
}
