// Package sync performs full registry builds from the configured font
// tree.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/fonti/fontreg/internal/config"
	"github.com/fonti/fontreg/internal/console"
	"github.com/fonti/fontreg/internal/registry"
	"github.com/fonti/fontreg/internal/sources"
)

// Manager orchestrates one full rebuild: it walks every configured
// category in order, assembles one registry entry per font directory, and
// writes the result to the configured output path.
type Manager struct {
	cfg     *config.Config
	fetcher *sources.FontFetcher
	console *console.Console
}

// Result summarizes a completed build.
type Result struct {
	// FontCount is the number of distinct fonts in the written registry.
	FontCount int

	// CategoriesSkipped lists configured categories absent on disk.
	CategoriesSkipped []string

	// OutputPath is the file the registry was written to.
	OutputPath string
}

// NewManager creates a build manager for the given configuration,
// reporting progress on cons.
func NewManager(cfg *config.Config, cons *console.Console) *Manager {
	return &Manager{
		cfg:     cfg,
		fetcher: sources.NewFontFetcher(cfg.BasePath),
		console: cons,
	}
}

// Run performs one full rebuild. Per-font problems degrade to empty entry
// fields and never fail the run; a missing category directory is skipped
// with a warning. Only an unreadable category directory or a failed
// output write aborts the build.
//
// A font identifier appearing under more than one category keeps the
// entry from the last category processed.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	reg := registry.New()
	result := &Result{OutputPath: m.cfg.OutputPath}

	for _, category := range m.cfg.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fonts, err := sources.CategoryFonts(m.cfg.BasePath, category)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				m.console.Warnf("Directory %s does not exist, skipping.",
					filepath.Join(m.cfg.BasePath, category))
				result.CategoriesSkipped = append(result.CategoriesSkipped, category)
				continue
			}
			return nil, fmt.Errorf("failed to scan category %s: %w", category, err)
		}

		slog.Debug("Scanning category", "category", category, "fonts", len(fonts))

		for _, font := range fonts {
			entry := m.fetcher.Fetch(category, font)
			reg.Set(font, entry)
			m.console.Successf("Processed %s: name='%s', display_name='%s', link='%s'",
				font, entry.Name, entry.DisplayName, entry.Link)
		}
	}

	if err := reg.WriteFile(m.cfg.OutputPath); err != nil {
		return nil, err
	}

	result.FontCount = reg.Len()
	m.console.Successf("Saved %d fonts to %s", result.FontCount, m.cfg.OutputPath)
	return result, nil
}
