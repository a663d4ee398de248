// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookfile reads the optional YAML metadata sidecar describing a
// booklet, an alternative to passing --title and --author on every run.
package bookfile

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Book describes booklet metadata loaded from a YAML file.
type Book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author,omitempty"`
	Volume int    `yaml:"volume,omitempty"`
}

// Read loads and validates a book metadata file.
func Read(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading book file: %w", err)
	}

	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing book file %s: %w", path, err)
	}
	if b.Title == "" {
		return nil, fmt.Errorf("book file %s: title is required", path)
	}
	return &b, nil
}

// DisplayTitle returns the title with the volume suffix applied, used to
// name both outputs.
func (b *Book) DisplayTitle() string {
	if b.Volume > 0 {
		return fmt.Sprintf("%s Vol. %d", b.Title, b.Volume)
	}
	return b.Title
}
