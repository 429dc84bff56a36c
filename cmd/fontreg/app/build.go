package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fonti/fontreg/internal/config"
	"github.com/fonti/fontreg/internal/console"
	"github.com/fonti/fontreg/internal/sync"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the font tree and write the registry JSON",
	Long: `Scan every configured category directory of the font tree, collect one
registry entry per font package (canonical name, display name, and the
first GitHub link from its description HTML), and write the full registry
as a single compact JSON file.

Each run is a full rebuild; there is no incremental state. A font
appearing under more than one category keeps the entry from the last
category processed.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("base", "", "Root of the font package tree (required unless set in config)")
	buildCmd.Flags().String("output", "", "Path of the registry JSON to write")
	buildCmd.Flags().String("config", "", "Path to configuration file (YAML format)")

	for _, name := range []string{"base", "output", "config"} {
		if err := viper.BindPFlag(name, buildCmd.Flags().Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
		}
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	var opts []config.Option
	if path := viper.GetString("config"); path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}
	if base := viper.GetString("base"); base != "" {
		opts = append(opts, config.WithBasePath(base))
	}
	if output := viper.GetString("output"); output != "" {
		opts = append(opts, config.WithOutputPath(output))
	}

	cfg, err := config.NewConfig(opts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Starting registry build",
		"base", cfg.BasePath,
		"output", cfg.OutputPath,
		"categories", cfg.Categories)

	cons := console.New(cmd.OutOrStdout())
	manager := sync.NewManager(cfg, cons)

	result, err := manager.Run(cmd.Context())
	if err != nil {
		return err
	}

	slog.Info("Registry build complete",
		"fonts", result.FontCount,
		"skipped_categories", len(result.CategoriesSkipped),
		"output", result.OutputPath)
	return nil
}
