// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <directory>",
	Short: "Build only the CBZ comic archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

func init() {
	addBuildFlags(archiveCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
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

	rec, err := pipeline.Archive(req)
	if err != nil {
		return err
	}

	fmt.Printf("archived %q: %d pages\n  %s\n", rec.Title, rec.Pages, rec.CBZPath)
	return nil
}
