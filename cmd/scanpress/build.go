// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <directory>",
	Short: "Build both the CBZ archive and the compressed PDF",
	Long: `Build discovers page scans in the directory, crops and rescales them in
two passes, and produces <title>.cbz (full density) and <title>.pdf (reduced
density, compressed) in the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	log := newLogger(cmd)
	pipeline, closer, err := newPipeline(pipelineConfig(), log)
	if err != nil {
		return err
	}
	defer closer()

	rec, err := pipeline.Build(req)
	if err != nil {
		return err
	}

	fmt.Printf("built %q: %d pages\n  %s\n  %s\n", rec.Title, rec.Pages, rec.CBZPath, rec.PDFPath)
	return nil
}
