// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stage runs one crop-scale pass: every page is cropped, rescaled to
// a target density, and written into a staging directory under its canonical
// basename.
package stage

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scanpress/internal/geometry"
	"github.com/pdiddy/scanpress/pkg/types"
)

// Transform applies the crop, density, resize, and flatten operations to a
// single page image. Production transforms shell out to ImageMagick.
type Transform interface {
	CropScale(src, dst string, margin, density, resizePercent int) error
}

// Params holds the settings for one pass.
type Params struct {
	// Density is the target output density in dots per inch.
	Density int

	// Margin is the pixel band shaved from each corner before resizing.
	Margin int

	// ExpectedDPI is the resolution every source must measure; a mismatch
	// fails the page before its transform runs.
	ExpectedDPI int
}

// Run crops and scales pages, in order, into stagingDir. The first failure
// aborts the pass: this is a batch job where partial output is not a valid
// result.
func Run(probe geometry.Probe, tf Transform, pages []types.Page, stagingDir string, p Params, log zerolog.Logger) error {
	for _, pg := range pages {
		det, err := geometry.Resolve(probe, pg.SourcePath, p.Density, p.ExpectedDPI)
		if err != nil {
			return err
		}

		dst := filepath.Join(stagingDir, pg.Basename)
		if err := tf.CropScale(pg.SourcePath, dst, p.Margin, det.Density, det.ResizePercent); err != nil {
			return fmt.Errorf("transforming %s: %w", filepath.Base(pg.SourcePath), err)
		}
		log.Debug().
			Str("page", pg.Basename).
			Int("resize_percent", det.ResizePercent).
			Msg("page staged")
	}

	log.Info().
		Int("pages", len(pages)).
		Int("density", p.Density).
		Msg("pass staged")
	return nil
}
