package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eugenenazirov/basket-splitter/internal/splitter"
)

var (
	// ErrInvalidCatalog indicates the provided catalog violates validation rules.
	ErrInvalidCatalog = errors.New("catalog must list at least one product and stay within the delivery type limit")
	// ErrCatalogNotLoaded is returned when no catalog has been stored yet.
	ErrCatalogNotLoaded = errors.New("catalog has not been loaded")
)

// Storage provides access to the catalog used by the splitter.
type Storage interface {
	GetCatalog() (*splitter.Catalog, error)
	SetCatalog(catalog *splitter.Catalog) error
}

// MemoryStorage keeps the active catalog in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu               sync.RWMutex
	catalog          *splitter.Catalog
	maxDeliveryTypes int
}

// NewMemoryStorage creates an empty storage accepting catalogs with at most
// maxDeliveryTypes delivery types. Non-positive limits fall back to
// splitter.DefaultMaxDeliveryTypes.
func NewMemoryStorage(maxDeliveryTypes int) *MemoryStorage {
	if maxDeliveryTypes <= 0 || maxDeliveryTypes > splitter.MaxSearchWidth {
		maxDeliveryTypes = splitter.DefaultMaxDeliveryTypes
	}
	return &MemoryStorage{maxDeliveryTypes: maxDeliveryTypes}
}

// MaxDeliveryTypes returns the delivery type limit enforced by SetCatalog.
func (s *MemoryStorage) MaxDeliveryTypes() int {
	return s.maxDeliveryTypes
}

// GetCatalog returns the active catalog. Catalogs are immutable so the
// pointer can be shared freely.
func (s *MemoryStorage) GetCatalog() (*splitter.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.catalog == nil {
		return nil, ErrCatalogNotLoaded
	}
	return s.catalog, nil
}

// SetCatalog validates and stores catalog, replacing the previous one.
func (s *MemoryStorage) SetCatalog(catalog *splitter.Catalog) error {
	if catalog == nil || catalog.Len() == 0 {
		return ErrInvalidCatalog
	}
	if n := len(catalog.Universe()); n > s.maxDeliveryTypes {
		return fmt.Errorf("%w: %d delivery types, limit is %d", ErrInvalidCatalog, n, s.maxDeliveryTypes)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	return nil
}
