// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const binZip = "zip"

// ZipArchiver packs staged pages into a zip archive with the zip tool.
type ZipArchiver struct {
	exec executor
	log  zerolog.Logger
}

// NewZipArchiver returns a subprocess-backed archiver.
func NewZipArchiver(timeout time.Duration, log zerolog.Logger) *ZipArchiver {
	return &ZipArchiver{exec: newExecutor(timeout), log: log}
}

// Zip archives files, in the given order, into a fresh archive at outPath.
// Directory components are junked so entries are bare page names. zip
// appends to an existing archive, so any previous output is removed first.
func (z *ZipArchiver) Zip(files []string, outPath string) error {
	if len(files) == 0 {
		return fmt.Errorf("nothing to archive into %s", outPath)
	}
	if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale archive %s: %w", outPath, err)
	}

	args := append([]string{"-q", "-j", outPath}, files...)
	if err := z.exec.Run(binZip, args...); err != nil {
		return &ToolError{Tool: binZip, Args: args, Err: err}
	}
	z.log.Debug().Str("archive", outPath).Int("entries", len(files)).Msg("archive written")
	return nil
}
