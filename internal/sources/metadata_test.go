package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "METADATA.pb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadMetadataFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		fields  []string
		want    []string
	}{
		{
			name: "quoted_values",
			content: `name: "Example Font"
designer: "Someone"
display_name: "Example"`,
			fields: []string{"name", "display_name"},
			want:   []string{"Example Font", "Example"},
		},
		{
			name:    "unquoted_values",
			content: "name: Example Font\ndisplay_name: Example",
			fields:  []string{"name", "display_name"},
			want:    []string{"Example Font", "Example"},
		},
		{
			name:    "missing_field_defaults_to_empty",
			content: `name: "Example Font"`,
			fields:  []string{"name", "display_name"},
			want:    []string{"Example Font", ""},
		},
		{
			name: "first_match_wins",
			content: `name: "First"
name: "Second"`,
			fields: []string{"name"},
			want:   []string{"First"},
		},
		{
			name:    "value_containing_colon",
			content: `name: "Font: The Sequel"`,
			fields:  []string{"name"},
			want:    []string{"Font: The Sequel"},
		},
		{
			name:    "no_space_after_colon",
			content: `name:"Tight"`,
			fields:  []string{"name"},
			want:    []string{"Tight"},
		},
		{
			name:    "asymmetric_quotes_lose_only_present_quote",
			content: `name: "Unterminated`,
			fields:  []string{"name"},
			want:    []string{"Unterminated"},
		},
		{
			name:    "interior_quotes_preserved",
			content: `name: "Say ""hi"""`,
			fields:  []string{"name"},
			want:    []string{`Say ""hi""`},
		},
		{
			name: "prefix_must_be_at_line_start",
			content: `  name: "Indented"
fullname: "Not the name field"
name: "Actual"`,
			fields: []string{"name"},
			want:   []string{"Actual"},
		},
		{
			name:    "result_order_follows_request_order",
			content: "name: A\ndisplay_name: B",
			fields:  []string{"display_name", "name"},
			want:    []string{"B", "A"},
		},
		{
			name:    "empty_file",
			content: "",
			fields:  []string{"name", "display_name"},
			want:    []string{"", ""},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeMetadata(t, tt.content)
			assert.Equal(t, tt.want, ReadMetadataFields(path, tt.fields))
		})
	}
}

func TestReadMetadataFieldsMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "METADATA.pb")
	got := ReadMetadataFields(path, []string{"name", "display_name"})
	assert.Equal(t, []string{"", ""}, got)
}
