package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFontFile(t *testing.T, base string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{base}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o600))
}

func TestDescriptionPath(t *testing.T) {
	t.Parallel()

	t.Run("prefers_article_variant", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		writeFontFile(t, base, "ofl", "roboto", "article", "ARTICLE.en_us.html")
		writeFontFile(t, base, "ofl", "roboto", "DESCRIPTION.en_us.html")

		path, ok := DescriptionPath(base, "ofl", "roboto")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(base, "ofl", "roboto", "article", "ARTICLE.en_us.html"), path)
	})

	t.Run("falls_back_to_description", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		writeFontFile(t, base, "ofl", "roboto", "DESCRIPTION.en_us.html")

		path, ok := DescriptionPath(base, "ofl", "roboto")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(base, "ofl", "roboto", "DESCRIPTION.en_us.html"), path)
	})

	t.Run("neither_file_present", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "ofl", "roboto"), 0o755))

		path, ok := DescriptionPath(base, "ofl", "roboto")
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("font_directory_absent", func(t *testing.T) {
		t.Parallel()

		path, ok := DescriptionPath(t.TempDir(), "ofl", "ghost")
		assert.False(t, ok)
		assert.Empty(t, path)
	})
}

func TestMetadataPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join("base", "ofl", "roboto", "METADATA.pb"),
		MetadataPath("base", "ofl", "roboto"))
}
