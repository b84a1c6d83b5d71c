package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"CoinLife/internal/model"
)

// file is the on-disk catalog layout:
//
//	days:
//	  1:
//	    - type: bullish_listing
//	      text: ...
//	      min: 10
//	      max: 30
//	      tier: B
type file struct {
	Days map[int][]model.EventSpec `yaml:"days"`
}

// Load reads a YAML catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Days) == 0 {
		return nil, fmt.Errorf("parse catalog: no days defined")
	}
	c := New(f.Days)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}
