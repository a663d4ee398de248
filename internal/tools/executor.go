// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools wraps the external binaries the pipeline drives: ImageMagick
// for probing and transforming pages, zip for the comic archive, img2pdf for
// rasterizing pages into a PDF, and Ghostscript or pdfcpu for compression.
package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec. A non-zero
// timeout bounds every invocation; zero leaves tools unbounded.
type osExecutor struct {
	timeout time.Duration
}

func newExecutor(timeout time.Duration) executor {
	return &osExecutor{timeout: timeout}
}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) command(name string, args ...string) (*exec.Cmd, context.CancelFunc) {
	if o.timeout <= 0 {
		return exec.Command(name, args...), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	return exec.CommandContext(ctx, name, args...), cancel
}

func (o *osExecutor) Run(name string, args ...string) error {
	cmd, cancel := o.command(name, args...)
	defer cancel()

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (o *osExecutor) Output(name string, args ...string) (string, error) {
	cmd, cancel := o.command(name, args...)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

// ToolError reports an external tool invocation that failed. The pipeline
// treats every ToolError as fatal; there is no retry.
type ToolError struct {
	Tool string
	Args []string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
