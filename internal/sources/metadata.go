package sources

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// ReadMetadataFields extracts the named fields from a METADATA.pb style
// line-oriented file. The result has one value per requested field, in
// request order, defaulting to the empty string for fields not found.
//
// A relevant line has the form <field>:<value>, where value may be wrapped
// in double quotes. The first line matching a field wins; later lines for
// the same field are ignored.
//
// The reader is best-effort by contract: a missing file yields all
// defaults, and a read anomaly mid-scan keeps whatever values were already
// collected. Both cases are distinguished here only for logging; neither
// is an error to the caller.
func ReadMetadataFields(path string, fields []string) []string {
	values := make(map[string]string, len(fields))

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("Unable to open metadata file", "path", path, "error", err)
		}
		return collectFields(fields, values)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		for _, field := range fields {
			rest, ok := strings.CutPrefix(line, field+":")
			if !ok {
				continue
			}
			if _, seen := values[field]; !seen {
				values[field] = unquoteOnce(strings.TrimSpace(rest))
			}
			break
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("Metadata read interrupted", "path", path, "error", err)
	}

	return collectFields(fields, values)
}

// unquoteOnce strips a single layer of enclosing double quotes. Each side
// is trimmed independently, so asymmetrically quoted values lose only the
// quote that is present. Interior quotes are left alone.
func unquoteOnce(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func collectFields(fields []string, values map[string]string) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = values[field]
	}
	return out
}
