// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"time"

	"github.com/rs/zerolog"
)

const binImg2PDF = "img2pdf"

// Img2PDF rasterizes staged page images into a single PDF, embedding
// title and author metadata.
type Img2PDF struct {
	exec executor
	log  zerolog.Logger
}

// NewImg2PDF returns a subprocess-backed PDF converter.
func NewImg2PDF(timeout time.Duration, log zerolog.Logger) *Img2PDF {
	return &Img2PDF{exec: newExecutor(timeout), log: log}
}

// Convert writes a PDF at outPath containing images in the given order.
// An empty author is omitted from the metadata.
func (c *Img2PDF) Convert(images []string, outPath, title, author string) error {
	args := []string{"--output", outPath, "--title", title}
	if author != "" {
		args = append(args, "--author", author)
	}
	args = append(args, images...)

	if err := c.exec.Run(binImg2PDF, args...); err != nil {
		return &ToolError{Tool: binImg2PDF, Args: args, Err: err}
	}
	c.log.Debug().Str("pdf", outPath).Int("pages", len(images)).Msg("pdf rasterized")
	return nil
}
