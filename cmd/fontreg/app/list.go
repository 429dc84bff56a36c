package app

import (
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fonti/fontreg/internal/config"
	"github.com/fonti/fontreg/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a built registry file as a table",
	Long: `Read a registry JSON file produced by the build command and print its
entries as a table, in registry order.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("file", config.DefaultOutputPath, "Path of the registry JSON to read")

	if err := viper.BindPFlag("file", listCmd.Flags().Lookup("file")); err != nil {
		slog.Error("Error binding file flag", "error", err)
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	path := viper.GetString("file")

	reg, err := registry.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header("ID", "Name", "Display Name", "Link")
	for _, id := range reg.Keys() {
		entry, _ := reg.Get(id)
		if err := table.Append([]string{id, entry.Name, entry.DisplayName, entry.Link}); err != nil {
			return fmt.Errorf("failed to build registry table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render registry table: %w", err)
	}

	slog.Debug("Listed registry", "file", path, "fonts", reg.Len())
	return nil
}
