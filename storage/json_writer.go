package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shopscrape/models"
)

// JSONWriter persists the collected document as a single JSON file.
// The write is atomic: the document lands in a temp file first and is
// renamed into place, so a failed run never leaves a truncated file
// for the presentation layer to misread.
type JSONWriter struct {
	path string
}

// NewJSONWriter prepares a writer targeting the given path.
// Intermediate directories are created automatically.
func NewJSONWriter(path string) (*JSONWriter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir: %w", err)
	}
	return &JSONWriter{path: path}, nil
}

// Write marshals the document and atomically replaces the target file.
func (w *JSONWriter) Write(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("json: marshal document: %w", err)
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".scraped-*.json")
	if err != nil {
		return fmt.Errorf("json: create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("json: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("json: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("json: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("json: rename into place: %w", err)
	}
	return nil
}

// Close is a no-op; the writer holds no open resources between writes.
func (w *JSONWriter) Close() error {
	return nil
}
