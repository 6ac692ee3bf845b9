package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `categories:
  - name: Coffee
    keywords:
      - kahve
      - starbucks
  - name: Groceries
    keywords:
      - migros
exclusions:
  - limit
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Categories) != 2 {
		t.Fatalf("categories: got %d, want 2", len(cfg.Categories))
	}
	if cfg.Categories[0].Name != "Coffee" {
		t.Errorf("name: got %q, want %q", cfg.Categories[0].Name, "Coffee")
	}
	if len(cfg.Exclusions) != 1 {
		t.Errorf("exclusions: got %d, want 1", len(cfg.Exclusions))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid yaml", "categories: ["},
		{"no categories", "exclusions: [limit]"},
		{"empty category name", "categories:\n  - name: \"\"\n    keywords: [x]"},
		{"no keywords", "categories:\n  - name: Coffee\n    keywords: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Categories) != 2 {
		t.Errorf("categories: got %d, want 2", len(cfg.Categories))
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClassifierFromConfig(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cl := cfg.Classifier()

	tests := []struct {
		desc     string
		expected string
	}{
		{"STARBUCKS KANYON", "Coffee"},
		{"KAHVE DUNYASI", "Coffee"},
		{"MİGROS ATAŞEHİR", "Groceries"},
		{"LCW ANKARA", "Other"},
	}
	for _, tt := range tests {
		if got := cl.Classify(tt.desc); got != tt.expected {
			t.Errorf("Classify(%q): got %q, want %q", tt.desc, got, tt.expected)
		}
	}

	if !cl.IsInformational("KART LIMIT ARTISI") {
		t.Error("expected configured exclusion to match")
	}
	// The file set its own exclusions, so the built-in list is replaced.
	if cl.IsInformational("TOPLAM PUAN") {
		t.Error("built-in exclusions should not apply when the file sets its own")
	}
}
