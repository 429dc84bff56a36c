// Package registry defines the font registry data model and its JSON file
// format.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FontEntry is one record in the registry: the canonical name, display
// name, and source repository link for a single font package. Any field
// may be empty when the source tree does not provide it.
type FontEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Link        string `json:"link"`
}

// Registry maps font identifiers to their entries. Keys keep their
// first-insertion order when marshaled; setting an existing key replaces
// the entry in place without moving it.
type Registry struct {
	keys    []string
	entries map[string]FontEntry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]FontEntry),
	}
}

// Set inserts or overwrites the entry for id.
func (r *Registry) Set(id string, entry FontEntry) {
	if _, ok := r.entries[id]; !ok {
		r.keys = append(r.keys, id)
	}
	r.entries[id] = entry
}

// Get returns the entry for id and whether it exists.
func (r *Registry) Get(id string) (FontEntry, bool) {
	entry, ok := r.entries[id]
	return entry, ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Keys returns the font identifiers in insertion order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// MarshalJSON emits the registry as a single compact JSON object with
// keys in insertion order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.entries[id])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entry %q: %w", id, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a registry object, preserving the key order of the
// document.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry document must be a JSON object")
	}

	r.keys = nil
	r.entries = make(map[string]FontEntry)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse registry key: %w", err)
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("registry key must be a string, got %v", tok)
		}

		var entry FontEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("failed to parse entry %q: %w", id, err)
		}
		r.Set(id, entry)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}
	return nil
}

// WriteFile serializes the registry to path as compact UTF-8 JSON,
// creating parent directories as needed.
func (r *Registry) WriteFile(path string) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry file %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a registry previously written with WriteFile.
func ReadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	reg := New()
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}
	return reg, nil
}
