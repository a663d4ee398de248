// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package page discovers scan images and assigns them a stable page order.
// The ordering key is the first run of digits in the filename; output names
// are zero-padded so lexicographic order equals page order downstream.
package page

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdiddy/scanpress/pkg/types"
)

// ErrNoPages indicates the source directory matched no input images.
var ErrNoPages = errors.New("no input pages found")

// minPadWidth keeps names three digits wide for up to 999 pages; wider sets
// widen the padding instead of colliding.
const minPadWidth = 3

// ParseIndex extracts the ordering index from a filename: the integer value
// of the first maximal run of decimal digits, or 0 when no digits occur.
func ParseIndex(name string) int {
	start := -1
	for i := 0; i < len(name); i++ {
		if name[i] >= '0' && name[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiOrZero(name[start:i])
		}
	}
	if start >= 0 {
		return atoiOrZero(name[start:])
	}
	return 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PadWidth returns the zero-pad width for a page set whose largest index is
// maxIndex: at least minPadWidth, wider when the set needs it.
func PadWidth(maxIndex int) int {
	w := len(strconv.Itoa(maxIndex))
	if w < minPadWidth {
		w = minPadWidth
	}
	return w
}

// CanonicalName returns the zero-padded output basename for index, keeping
// the original file extension.
func CanonicalName(index, width int, ext string) string {
	return fmt.Sprintf("page-%0*d%s", width, index, ext)
}

// Discover globs dir for files matching pattern and returns the resulting
// Pages in ascending index order, ties broken by filename. Two inputs
// mapping to the same index would collide in the staging directory, so
// duplicates are an error. An empty match set returns ErrNoPages.
func Discover(dir, pattern string) ([]types.Page, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("globbing %s in %s: %w", pattern, dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s matched nothing in %s", ErrNoPages, pattern, dir)
	}

	pages := make([]types.Page, len(matches))
	maxIndex := 0
	for i, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", m, err)
		}
		idx := ParseIndex(filepath.Base(m))
		if idx > maxIndex {
			maxIndex = idx
		}
		pages[i] = types.Page{SourcePath: abs, Index: idx}
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Index != pages[j].Index {
			return pages[i].Index < pages[j].Index
		}
		return filepath.Base(pages[i].SourcePath) < filepath.Base(pages[j].SourcePath)
	})

	width := PadWidth(maxIndex)
	for i := range pages {
		if i > 0 && pages[i].Index == pages[i-1].Index {
			return nil, fmt.Errorf("duplicate page index %d: %s and %s",
				pages[i].Index,
				filepath.Base(pages[i-1].SourcePath),
				filepath.Base(pages[i].SourcePath))
		}
		pages[i].Basename = CanonicalName(pages[i].Index, width, filepath.Ext(pages[i].SourcePath))
	}

	return pages, nil
}
