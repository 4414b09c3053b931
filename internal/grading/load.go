package grading

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

type document struct {
	Tables []Table `yaml:"tables"`
}

// Parse decodes a YAML table document and builds a validated catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse grading tables: %w", err)
	}
	c, err := NewCatalog(doc.Tables)
	if err != nil {
		return nil, fmt.Errorf("invalid grading tables: %w", err)
	}
	return c, nil
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grading tables: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in MORTH tables.
func Default() (*Catalog, error) {
	return Parse(defaultTables)
}
