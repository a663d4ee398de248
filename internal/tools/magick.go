// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	binMagick   = "magick"
	binConvert  = "convert"
	binIdentify = "identify"
)

// Magick drives ImageMagick for metadata probing and page transforms.
// ImageMagick 7 exposes a single magick binary; version 6 ships the legacy
// convert and identify pair. Both spell the operations identically.
type Magick struct {
	convertCmd  []string
	identifyCmd []string
	exec        executor
	log         zerolog.Logger
}

// DetectMagick prefers ImageMagick 7's magick binary and falls back to the
// legacy convert/identify pair. Returns an error when neither is on PATH.
func DetectMagick(timeout time.Duration, log zerolog.Logger) (*Magick, error) {
	return detectMagick(newExecutor(timeout), log)
}

func detectMagick(exec executor, log zerolog.Logger) (*Magick, error) {
	if _, err := exec.LookPath(binMagick); err == nil {
		return &Magick{
			convertCmd:  []string{binMagick},
			identifyCmd: []string{binMagick, binIdentify},
			exec:        exec,
			log:         log,
		}, nil
	}

	if _, err := exec.LookPath(binConvert); err == nil {
		if _, err := exec.LookPath(binIdentify); err != nil {
			return nil, fmt.Errorf("found %s but not %s: incomplete ImageMagick 6 install", binConvert, binIdentify)
		}
		return &Magick{
			convertCmd:  []string{binConvert},
			identifyCmd: []string{binIdentify},
			exec:        exec,
			log:         log,
		}, nil
	}

	return nil, fmt.Errorf(
		"imagemagick not available: neither %s nor %s found on PATH",
		binMagick, binConvert,
	)
}

// Resolution reports the horizontal resolution of the image at path in dots
// per inch, as printed by identify's %x format token.
func (m *Magick) Resolution(path string) (int, error) {
	args := append(tail(m.identifyCmd), "-units", "PixelsPerInch", "-format", "%x", path)
	out, err := m.exec.Output(m.identifyCmd[0], args...)
	if err != nil {
		return 0, &ToolError{Tool: m.identifyCmd[0], Args: args, Err: err}
	}

	// Older identify builds append the unit name after the number.
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s reported no resolution for %s", m.identifyCmd[0], path)
	}
	res, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing resolution %q for %s: %w", fields[0], path, err)
	}
	return int(res), nil
}

// CropScale rewrites src into dst: shave margin pixels off the top-left
// corner, then off the bottom-right corner, stamp the target density, resize
// by percent, and flatten transparency onto white. Crops run before the
// resize so the margin is a fixed pixel count; the density is stamped before
// the resize so consumers can recompute physical page size; the alpha
// flatten runs last to avoid edge artifacts from intermediate crops.
func (m *Magick) CropScale(src, dst string, margin, density, resizePercent int) error {
	args := append(tail(m.convertCmd),
		src,
		"-crop", fmt.Sprintf("+%d+%d", margin, margin), "+repage",
		"-crop", fmt.Sprintf("-%d-%d", margin, margin), "+repage",
		"-units", "PixelsPerInch",
		"-density", strconv.Itoa(density),
		"-resize", strconv.Itoa(resizePercent)+"%",
		"-background", "white",
		"-alpha", "remove",
		"-alpha", "off",
		dst,
	)
	if err := m.exec.Run(m.convertCmd[0], args...); err != nil {
		return &ToolError{Tool: m.convertCmd[0], Args: args, Err: err}
	}
	m.log.Debug().Str("src", src).Str("dst", dst).Int("resize_percent", resizePercent).Msg("page transformed")
	return nil
}

// tail returns the subcommand portion of a binary invocation, copied so
// callers can append safely.
func tail(cmd []string) []string {
	return append([]string{}, cmd[1:]...)
}
