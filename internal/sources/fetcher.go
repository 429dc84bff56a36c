package sources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fonti/fontreg/internal/htmldoc"
	"github.com/fonti/fontreg/internal/registry"
)

const (
	// GitHubHost is the host substring a description link must contain
	// to be recorded as the font's source repository.
	GitHubHost = "github.com"

	nameField        = "name"
	displayNameField = "display_name"
)

// FontFetcher assembles registry entries from font package directories
// under a single base path.
type FontFetcher struct {
	base string
}

// NewFontFetcher creates a fetcher for the font tree rooted at base.
func NewFontFetcher(base string) *FontFetcher {
	return &FontFetcher{base: base}
}

// Fetch builds the registry entry for font under category. A missing
// description file, a description without a GitHub link, and missing
// metadata fields all degrade to empty strings.
func (f *FontFetcher) Fetch(category, font string) registry.FontEntry {
	link := ""
	if path, ok := DescriptionPath(f.base, category, font); ok {
		link = f.extractLink(path)
	}

	values := ReadMetadataFields(
		MetadataPath(f.base, category, font),
		[]string{nameField, displayNameField},
	)

	return registry.FontEntry{
		Name:        values[0],
		DisplayName: values[1],
		Link:        link,
	}
}

// extractLink returns the first GitHub link of the description document at
// path, or the empty string when the file cannot be read or carries none.
func (f *FontFetcher) extractLink(path string) string {
	doc, err := os.Open(path)
	if err != nil {
		slog.Debug("Unable to open description file", "path", path, "error", err)
		return ""
	}
	defer doc.Close()

	link, _ := htmldoc.FirstLink(doc, GitHubHost)
	return link
}

// CategoryFonts returns the immediate subdirectory names of the category
// directory in lexical order; non-directory entries are ignored. The error
// wraps fs.ErrNotExist when the category directory is absent so callers
// can treat that case as a skip.
func CategoryFonts(base, category string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(base, category))
	if err != nil {
		return nil, fmt.Errorf("failed to read category directory: %w", err)
	}

	var fonts []string
	for _, entry := range entries {
		if entry.IsDir() {
			fonts = append(fonts, entry.Name())
		}
	}
	return fonts, nil
}
