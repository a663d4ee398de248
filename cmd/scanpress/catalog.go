// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scanpress/internal/catalog"
	"github.com/pdiddy/scanpress/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the booklet build history",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent builds, newest first",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show all builds recorded for a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full build history as YAML to stdout",
	RunE:  runCatalogExport,
}

func init() {
	catalogListCmd.Flags().Int("limit", 0, "maximum number of builds to list")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func openCatalog() (*catalog.Store, error) {
	cfg := pipelineConfig()
	if !cfg.Catalog.Enabled {
		return nil, fmt.Errorf("the catalog is disabled in configuration")
	}
	return catalog.Open(cfg.Catalog.Dir)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	recs, err := store.List(limit)
	if err != nil {
		return err
	}
	printRecords(recs)
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Show(args[0])
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Printf("no builds recorded for %q\n", args[0])
		return nil
	}
	printRecords(recs)
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportYAML(os.Stdout)
}

func printRecords(recs []types.BuildRecord) {
	if len(recs) == 0 {
		fmt.Println("no builds recorded")
		return
	}
	fmt.Printf("%-25s  %-20s  %5s  %s\n", "Title", "Author", "Pages", "Built")
	for _, r := range recs {
		fmt.Printf("%-25s  %-20s  %5d  %s\n",
			truncate(r.Title, 25), truncate(r.Author, 20), r.Pages,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
