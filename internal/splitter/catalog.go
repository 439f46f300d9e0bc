package splitter

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Catalog maps products to the delivery types able to ship them.
// A Catalog is immutable once built and safe to share between goroutines.
type Catalog struct {
	products map[string][]string
	universe []string
}

// NewCatalog validates the mapping and builds a Catalog from it.
// Delivery type lists are deduplicated and sorted.
func NewCatalog(mapping map[string][]string) (*Catalog, error) {
	if len(mapping) == 0 {
		return nil, &ConfigurationError{Err: errors.New("catalog is empty")}
	}

	products := make(map[string][]string, len(mapping))
	seen := make(map[string]struct{})
	for product, types := range mapping {
		if strings.TrimSpace(product) == "" {
			return nil, configErr("", "product name must not be blank")
		}
		if len(types) == 0 {
			return nil, configErr("", "product %q has no delivery types", product)
		}

		unique := make(map[string]struct{}, len(types))
		for _, t := range types {
			if strings.TrimSpace(t) == "" {
				return nil, configErr("", "product %q lists a blank delivery type", product)
			}
			unique[t] = struct{}{}
			seen[t] = struct{}{}
		}
		products[product] = sortedKeys(unique)
	}

	return &Catalog{
		products: products,
		universe: sortedKeys(seen),
	}, nil
}

// ParseCatalog decodes a JSON object of product -> delivery types.
func ParseCatalog(data []byte) (*Catalog, error) {
	var mapping map[string][]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("parse catalog: %w", err)}
	}
	return NewCatalog(mapping)
}

// DeliveryTypes returns the sorted delivery types eligible for product,
// or nil when the product is not catalogued.
func (c *Catalog) DeliveryTypes(product string) []string {
	if c == nil {
		return nil
	}
	types, ok := c.products[product]
	if !ok {
		return nil
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// Has reports whether product is catalogued.
func (c *Catalog) Has(product string) bool {
	if c == nil {
		return false
	}
	_, ok := c.products[product]
	return ok
}

// Universe returns every delivery type in the catalog, sorted.
func (c *Catalog) Universe() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.universe))
	copy(out, c.universe)
	return out
}

// Products returns the catalogued product names, sorted.
func (c *Catalog) Products() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.products))
	for product := range c.products {
		out = append(out, product)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of catalogued products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Mapping returns a deep copy of the product -> delivery types mapping.
func (c *Catalog) Mapping() map[string][]string {
	if c == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(c.products))
	for product := range c.products {
		out[product] = c.DeliveryTypes(product)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
