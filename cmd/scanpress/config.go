// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/scanpress/pkg/types"
)

// setConfigDefaults seeds viper with the shipped pipeline defaults so the
// config file and SCANPRESS_* environment only need to name overrides.
func setConfigDefaults() {
	def := types.DefaultPipelineConfig()

	viper.SetDefault("geometry.source_dpi", def.Geometry.SourceDPI)
	viper.SetDefault("geometry.archive_dpi", def.Geometry.ArchiveDPI)
	viper.SetDefault("geometry.pdf_dpi", def.Geometry.PDFDPI)
	viper.SetDefault("geometry.margin", def.Geometry.Margin)
	viper.SetDefault("input.glob", def.Input.Glob)
	viper.SetDefault("pdf.optimizer", string(def.PDF.Optimizer))
	viper.SetDefault("pdf.quality", def.PDF.Quality)
	viper.SetDefault("tools.timeout", def.Tools.Timeout)
	viper.SetDefault("catalog.enabled", def.Catalog.Enabled)
	viper.SetDefault("catalog.dir", def.Catalog.Dir)
}

// pipelineConfig assembles the effective configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Geometry: types.GeometryConfig{
			SourceDPI:  viper.GetInt("geometry.source_dpi"),
			ArchiveDPI: viper.GetInt("geometry.archive_dpi"),
			PDFDPI:     viper.GetInt("geometry.pdf_dpi"),
			Margin:     viper.GetInt("geometry.margin"),
		},
		Input: types.InputConfig{
			Glob: viper.GetString("input.glob"),
		},
		PDF: types.PDFConfig{
			Optimizer: types.OptimizerBackend(viper.GetString("pdf.optimizer")),
			Quality:   viper.GetString("pdf.quality"),
		},
		Tools: types.ToolsConfig{
			Timeout: viper.GetDuration("tools.timeout"),
		},
		Catalog: types.CatalogConfig{
			Enabled: viper.GetBool("catalog.enabled"),
			Dir:     viper.GetString("catalog.dir"),
		},
	}
}
