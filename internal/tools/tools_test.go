// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZipArchiver_ArgsAndOrder(t *testing.T) {
	exec := &mockExecutor{}
	z := &ZipArchiver{exec: exec, log: zerolog.Nop()}

	files := []string{"/tmp/s/page-001.png", "/tmp/s/page-002.png", "/tmp/s/page-010.png"}
	if err := z.Zip(files, "/out/Title.cbz"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exec.ranCmds) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(exec.ranCmds))
	}
	got := exec.ranCmds[0]
	want := "zip -q -j /out/Title.cbz /tmp/s/page-001.png /tmp/s/page-002.png /tmp/s/page-010.png"
	if got != want {
		t.Errorf("invocation = %q, want %q", got, want)
	}
}

func TestZipArchiver_RemovesStaleArchive(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Title.cbz")
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	z := &ZipArchiver{exec: &mockExecutor{}, log: zerolog.Nop()}
	if err := z.Zip([]string{"page-001.png"}, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("stale archive should have been removed before zipping")
	}
}

func TestZipArchiver_EmptyInput(t *testing.T) {
	z := NewZipArchiver(0, zerolog.Nop())
	if err := z.Zip(nil, "out.cbz"); err == nil {
		t.Fatal("expected error for empty file list")
	}
}

func TestZipArchiver_ToolFailure(t *testing.T) {
	z := &ZipArchiver{exec: &failingExecutor{}, log: zerolog.Nop()}
	err := z.Zip([]string{"page-001.png"}, filepath.Join(t.TempDir(), "out.cbz"))
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Tool != "zip" {
		t.Errorf("tool = %q, want zip", te.Tool)
	}
}

func TestImg2PDF_Args(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{
			name:   "with author",
			author: "Jane Doe",
			want:   "img2pdf --output out.pdf --title My Book --author Jane Doe a.png b.png",
		},
		{
			name: "empty author omitted",
			want: "img2pdf --output out.pdf --title My Book a.png b.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{}
			c := &Img2PDF{exec: exec, log: zerolog.Nop()}
			if err := c.Convert([]string{"a.png", "b.png"}, "out.pdf", "My Book", tt.author); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exec.ranCmds[0] != tt.want {
				t.Errorf("invocation = %q, want %q", exec.ranCmds[0], tt.want)
			}
		})
	}
}

func TestImg2PDF_ToolFailure(t *testing.T) {
	c := &Img2PDF{exec: &failingExecutor{}, log: zerolog.Nop()}
	err := c.Convert([]string{"a.png"}, "out.pdf", "T", "")
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
}

func TestGhostscript_Args(t *testing.T) {
	exec := &mockExecutor{}
	g := &Ghostscript{quality: "prepress", exec: exec, log: zerolog.Nop()}
	if err := g.Optimize("raw.pdf", "final.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := exec.ranCmds[0]
	for _, want := range []string{
		"gs ",
		"-sDEVICE=pdfwrite",
		"-dPDFSETTINGS=/prepress",
		"-sOutputFile=final.pdf",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("invocation %q missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, " raw.pdf") {
		t.Errorf("input file should be the final argument: %q", got)
	}
}

func TestGhostscript_DefaultQuality(t *testing.T) {
	g := NewGhostscript("", 0, zerolog.Nop())
	if g.quality != "prepress" {
		t.Errorf("quality = %q, want prepress", g.quality)
	}
}

func TestGhostscript_ToolFailure(t *testing.T) {
	g := &Ghostscript{quality: "prepress", exec: &failingExecutor{}, log: zerolog.Nop()}
	err := g.Optimize("raw.pdf", "final.pdf")
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Tool != "gs" {
		t.Errorf("tool = %q, want gs", te.Tool)
	}
}

func TestToolError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	err := &ToolError{Tool: "zip", Args: []string{"-q"}, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ToolError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "zip -q") {
		t.Errorf("error text should include the invocation: %q", err.Error())
	}
}
