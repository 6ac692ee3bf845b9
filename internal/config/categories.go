// Package config loads optional YAML overrides for the keyword tables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mustafagonen/ekstreparse/internal/parser"
)

// CategoryConfig is one category entry in the YAML file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Config replaces the built-in category keyword table and, when set, the
// informational-line exclusion list.
type Config struct {
	Categories []CategoryConfig `yaml:"categories"`
	Exclusions []string         `yaml:"exclusions"`
}

// Load reads and parses a keyword-table file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("categories file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}
	for _, cat := range cfg.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", cat.Name)
		}
	}
	return &cfg, nil
}

// Classifier builds a parser classifier from the config. Keyword order in
// the file is preserved, so earlier categories win ties. When the file
// sets no exclusions, the built-in exclusion list stays in force.
func (c *Config) Classifier() *parser.Classifier {
	var rules []parser.CategoryRule
	for _, cat := range c.Categories {
		for _, kw := range cat.Keywords {
			rules = append(rules, parser.CategoryRule{Keyword: kw, Category: cat.Name})
		}
	}
	exclusions := c.Exclusions
	if len(exclusions) == 0 {
		exclusions = parser.DefaultExclusions()
	}
	return parser.NewClassifier(rules, exclusions)
}
