// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scanpress CLI, which turns a
// directory of page scans into a CBZ comic archive and a compressed,
// print-ready PDF booklet.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scanpress CLI.
var rootCmd = &cobra.Command{
	Use:   "scanpress",
	Short: "Turn page scans into comic archives and print-ready PDFs",
	Long: `scanpress converts a directory of page-scan images into a CBZ comic
archive and a compressed, searchable PDF booklet. Pages are cropped by a
fixed margin, rescaled to a target print density, packaged at full
resolution into the archive, and rasterized at reduced resolution into the
PDF.

The heavy lifting is delegated to external tools: ImageMagick for probing
and transforming pages, zip for the archive, img2pdf for rasterization, and
Ghostscript (or the built-in pdfcpu backend) for PDF compression.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scanpress.yaml or ~/.config/scanpress/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scanpress")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scanpress"))
		}
	}

	viper.SetEnvPrefix("SCANPRESS")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger: info level, debug with --verbose.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
