package sources

import (
	"os"
	"path/filepath"
)

const (
	articleFileName     = "ARTICLE.en_us.html"
	articleDirName      = "article"
	descriptionFileName = "DESCRIPTION.en_us.html"

	// MetadataFileName is the line-oriented metadata file shipped with
	// each font package.
	MetadataFileName = "METADATA.pb"
)

// DescriptionPath returns the path of the description document for font
// under category, preferring the rich article variant over the flat
// description file. The boolean is false when the font ships neither;
// absence is a normal outcome, not an error.
func DescriptionPath(base, category, font string) (string, bool) {
	candidates := []string{
		filepath.Join(base, category, font, articleDirName, articleFileName),
		filepath.Join(base, category, font, descriptionFileName),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// MetadataPath returns the path of the metadata file for font under
// category. The file is not required to exist.
func MetadataPath(base, category, font string) string {
	return filepath.Join(base, category, font, MetadataFileName)
}
