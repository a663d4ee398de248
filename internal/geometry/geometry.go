// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry computes the resize factor that brings a scanned page to
// a target print density.
package geometry

import (
	"fmt"

	"github.com/pdiddy/scanpress/pkg/types"
)

// Probe reports an image's horizontal resolution in dots per inch.
// Production probes shell out to ImageMagick's identify.
type Probe interface {
	Resolution(path string) (int, error)
}

// PreconditionError reports a source image whose measured resolution does
// not match the expected scan resolution. The crop margin assumes a fixed
// source density, so this stops the pass before any output is written for
// the page.
type PreconditionError struct {
	Path string
	Got  int
	Want int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: source resolution %d dpi, expected %d dpi", e.Path, e.Got, e.Want)
}

// Resolve probes path and computes the percentage resize reaching density
// dots per inch. The division truncates toward zero; rounding would
// accumulate sub-pixel size drift across a large page set.
func Resolve(p Probe, path string, density, expected int) (types.GeometryDetails, error) {
	if density <= 0 {
		return types.GeometryDetails{}, fmt.Errorf("invalid target density %d", density)
	}

	res, err := p.Resolution(path)
	if err != nil {
		return types.GeometryDetails{}, fmt.Errorf("probing %s: %w", path, err)
	}
	if res != expected {
		return types.GeometryDetails{}, &PreconditionError{Path: path, Got: res, Want: expected}
	}

	return types.GeometryDetails{
		Resolution:    res,
		Density:       density,
		ResizePercent: 100 * density / res,
	}, nil
}
