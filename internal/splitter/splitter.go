package splitter

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxDeliveryTypes bounds the delivery type universe searched by Split.
const DefaultMaxDeliveryTypes = 16

// Splitter divides baskets across the delivery types of a fixed catalog.
// A Splitter keeps no state between calls and is safe for concurrent use.
type Splitter struct {
	catalog          *Catalog
	maxDeliveryTypes int
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithMaxDeliveryTypes caps the number of delivery types Split will search.
// Values outside (0, MaxSearchWidth] are ignored.
func WithMaxDeliveryTypes(n int) Option {
	return func(s *Splitter) {
		if n > 0 && n <= MaxSearchWidth {
			s.maxDeliveryTypes = n
		}
	}
}

// New creates a Splitter bound to catalog.
func New(catalog *Catalog, opts ...Option) *Splitter {
	s := &Splitter{
		catalog:          catalog,
		maxDeliveryTypes: DefaultMaxDeliveryTypes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the splitter was built with.
func (s *Splitter) Catalog() *Catalog {
	if s == nil {
		return nil
	}
	return s.catalog
}

// Split assigns every basket item to one delivery type using as few delivery
// types as possible. Among minimal covers it prefers the one holding the
// delivery type able to carry the most items.
//
// Split fails with ErrConfiguration when the splitter has no usable catalog,
// ErrUnknownItem when the basket names an uncatalogued product and
// ErrUncoverable when no cover exists. It never returns a partial result.
func (s *Splitter) Split(ctx context.Context, basket []string) (Assignment, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if unknown := s.unknownItems(basket); len(unknown) > 0 {
		return nil, &UnknownItemError{Items: unknown}
	}
	if len(basket) == 0 {
		return Assignment{}, nil
	}

	candidates := AssignCandidates(s.catalog, basket)
	groups, err := FindMinimalGroups(ctx, basket, candidates)
	if err != nil {
		return nil, fmt.Errorf("find minimal delivery groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, ErrUncoverable
	}

	best := SelectBest(groups, candidates)
	return Partition(basket, candidates.Restrict(best)), nil
}

func (s *Splitter) validate() error {
	if s == nil || s.catalog == nil || s.catalog.Len() == 0 {
		return &ConfigurationError{Err: errors.New("splitter has no catalog")}
	}
	if n := len(s.catalog.universe); n > s.maxDeliveryTypes {
		return &ConfigurationError{
			Err: fmt.Errorf("%w: %d delivery types exceed the limit of %d", ErrTooManyDeliveryTypes, n, s.maxDeliveryTypes),
		}
	}
	return nil
}

func (s *Splitter) unknownItems(basket []string) []string {
	var unknown []string
	seen := make(map[string]struct{})
	for _, item := range basket {
		if s.catalog.Has(item) {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		unknown = append(unknown, item)
	}
	return unknown
}
