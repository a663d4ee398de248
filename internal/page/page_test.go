// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"scan1.png", 1},
		{"scan10.png", 10},
		{"scan042.png", 42},
		{"07-intro.png", 7},
		{"page12of30.png", 12},
		{"cover.png", 0},
		{"", 0},
		{"v2-scan31.png", 2},
		{"999999999999999999999999.png", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIndex(tt.name))
		})
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		index int
		width int
		ext   string
		want  string
	}{
		{1, 3, ".png", "page-001.png"},
		{0, 3, ".png", "page-000.png"},
		{999, 3, ".png", "page-999.png"},
		{42, 3, ".tiff", "page-042.tiff"},
		{1200, 4, ".png", "page-1200.png"},
		{7, 4, ".png", "page-0007.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalName(tt.index, tt.width, tt.ext))
	}
}

func TestPadWidth(t *testing.T) {
	assert.Equal(t, 3, PadWidth(0))
	assert.Equal(t, 3, PadWidth(999))
	assert.Equal(t, 4, PadWidth(1000))
	assert.Equal(t, 5, PadWidth(31337))
}

// writeFiles creates empty files with the given names in dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
}

func TestDiscover_OrdersByIndex(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "scan2.png", "scan10.png", "scan1.png")

	pages, err := Discover(dir, "*.png")
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, "page-001.png", pages[0].Basename)
	assert.Equal(t, "scan1.png", filepath.Base(pages[0].SourcePath))
	assert.Equal(t, "page-002.png", pages[1].Basename)
	assert.Equal(t, "scan2.png", filepath.Base(pages[1].SourcePath))
	assert.Equal(t, "page-010.png", pages[2].Basename)
	assert.Equal(t, "scan10.png", filepath.Base(pages[2].SourcePath))

	for _, p := range pages {
		assert.True(t, filepath.IsAbs(p.SourcePath))
	}
}

func TestDiscover_Empty(t *testing.T) {
	_, err := Discover(t.TempDir(), "*.png")
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestDiscover_IgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "scan1.png", "notes.txt", "scan2.jpeg")

	pages, err := Discover(dir, "*.png")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "page-001.png", pages[0].Basename)
}

func TestDiscover_WidensPaddingPast999(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "scan5.png", "scan1200.png")

	pages, err := Discover(dir, "*.png")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "page-0005.png", pages[0].Basename)
	assert.Equal(t, "page-1200.png", pages[1].Basename)
}

func TestDiscover_DuplicateIndex(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "scan7.png", "7-cover.png")

	_, err := Discover(dir, "*.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate page index 7")
	assert.False(t, errors.Is(err, ErrNoPages))
}

func TestDiscover_NoDigitsGetsIndexZero(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "cover.png", "scan1.png")

	pages, err := Discover(dir, "*.png")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "page-000.png", pages[0].Basename)
	assert.Equal(t, "cover.png", filepath.Base(pages[0].SourcePath))
	assert.Equal(t, "page-001.png", pages[1].Basename)
}
