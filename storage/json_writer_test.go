package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shopscrape/models"
)

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scraped_data.json")

	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}
	defer w.Close()

	doc := models.NewDocument()
	doc.Products = append(doc.Products, models.Product{Title: "Widget", Price: "$12.99"})
	doc.Reviews = append(doc.Reviews, models.Review{Date: "Jan 2023", Text: "great", Rating: 5})
	doc.Testimonials = append(doc.Testimonials, models.Testimonial{Text: "would buy again for sure", Rating: 4})

	if err := w.Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var got models.Document
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].Price != "$12.99" {
		t.Errorf("products round-trip: %+v", got.Products)
	}
	if got.Reviews[0].Rating != 5 {
		t.Errorf("review rating round-trip: %+v", got.Reviews)
	}
}

func TestJSONWriterEmptyListsAreArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped_data.json")

	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	if err := w.Write(models.NewDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	text := string(data)
	if strings.Contains(text, "null") {
		t.Errorf("empty lists must serialize as [], got:\n%s", text)
	}
	for _, field := range []string{`"products"`, `"reviews"`, `"testimonials"`} {
		if !strings.Contains(text, field) {
			t.Errorf("output missing top-level field %s", field)
		}
	}
}

func TestJSONWriterReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scraped_data.json")

	if err := os.WriteFile(path, []byte("old contents"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}
	if err := w.Write(models.NewDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "old contents") {
		t.Error("target file was not replaced")
	}

	// No temp files may survive a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files in output dir: %d entries", len(entries))
	}
}
