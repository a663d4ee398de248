// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"time"

	"github.com/rs/zerolog"
)

const binGs = "gs"

// Ghostscript compresses a PDF by redistilling it through pdfwrite with a
// named quality profile.
type Ghostscript struct {
	quality string
	exec    executor
	log     zerolog.Logger
}

// NewGhostscript returns a subprocess-backed optimizer using the given
// distiller profile ("prepress" when empty).
func NewGhostscript(quality string, timeout time.Duration, log zerolog.Logger) *Ghostscript {
	if quality == "" {
		quality = "prepress"
	}
	return &Ghostscript{quality: quality, exec: newExecutor(timeout), log: log}
}

// Optimize rewrites the PDF at src into a compressed copy at dst.
func (g *Ghostscript) Optimize(src, dst string) error {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/" + g.quality,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + dst,
		src,
	}
	if err := g.exec.Run(binGs, args...); err != nil {
		return &ToolError{Tool: binGs, Args: args, Err: err}
	}
	g.log.Debug().Str("pdf", dst).Str("quality", g.quality).Msg("pdf compressed")
	return nil
}
