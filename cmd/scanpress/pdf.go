// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <directory>",
	Short: "Build only the compressed PDF booklet",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

func init() {
	addBuildFlags(pdfCmd)
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
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

	rec, err := pipeline.PDF(req)
	if err != nil {
		return err
	}

	fmt.Printf("rendered %q: %d pages\n  %s\n", rec.Title, rec.Pages, rec.PDFPath)
	return nil
}
