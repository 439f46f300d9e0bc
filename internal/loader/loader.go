// Package loader reads catalogs and baskets from JSON or YAML files.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/basket-splitter/internal/splitter"
)

// ErrInvalidBasket is returned when a basket file cannot be decoded.
var ErrInvalidBasket = errors.New("basket must be a list of product names")

// LoadCatalog reads a catalog file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func LoadCatalog(path string) (*splitter.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &splitter.ConfigurationError{Source: path, Err: fmt.Errorf("read file: %w", err)}
	}

	var mapping map[string][]string
	if isYAML(path) {
		err = yaml.Unmarshal(data, &mapping)
	} else {
		err = json.Unmarshal(data, &mapping)
	}
	if err != nil {
		return nil, &splitter.ConfigurationError{Source: path, Err: fmt.Errorf("parse catalog: %w", err)}
	}

	catalog, err := splitter.NewCatalog(mapping)
	if err != nil {
		var cfgErr *splitter.ConfigurationError
		if errors.As(err, &cfgErr) && cfgErr.Source == "" {
			cfgErr.Source = path
		}
		return nil, err
	}
	return catalog, nil
}

// LoadBasket reads a basket file holding a list of product names.
// An empty list is a valid basket.
func LoadBasket(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read basket %s: %w", path, err)
	}

	if isYAML(path) {
		var items []string
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBasket, err)
		}
		return normalizeBasket(items), nil
	}
	return ParseBasket(data)
}

// ParseBasket decodes a JSON array of product names.
func ParseBasket(data []byte) ([]string, error) {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasket, err)
	}
	return normalizeBasket(items), nil
}

func normalizeBasket(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
