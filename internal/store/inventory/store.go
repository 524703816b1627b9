// Package inventory owns the catalog of sellable GPUs and their stock levels.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"gpupos/internal/domain"
	"gpupos/internal/storage"
)

// StorageKey is the logical name the catalog snapshot is persisted under.
const StorageKey = "gpu-inventory"

// Store is the single owner of the GPU collection. Every successful mutation
// serializes the whole collection to storage, overwriting the prior snapshot.
type Store struct {
	mu      sync.RWMutex
	storage storage.Store
	logger  *log.Logger
	gpus    []domain.GPU
}

func New(st storage.Store, logger *log.Logger) *Store {
	if st == nil {
		panic("inventory: nil storage")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: st, logger: logger}
}

// Hydrate loads the persisted catalog, falling back to seed when no snapshot
// exists yet. A malformed snapshot is an error, not a silent reset.
func (s *Store) Hydrate(seed []domain.GPU) error {
	var gpus []domain.GPU
	err := s.storage.Load(StorageKey, &gpus)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		s.logger.Printf("inventory: no snapshot, seeding %d gpus", len(seed))
		return s.SetAll(seed)
	case err != nil:
		return fmt.Errorf("hydrate inventory: %w", err)
	}
	s.mu.Lock()
	s.gpus = gpus
	s.mu.Unlock()
	s.logger.Printf("inventory: hydrated %d gpus", len(gpus))
	return nil
}

// SetAll replaces the entire collection. Hydration-time only.
func (s *Store) SetAll(gpus []domain.GPU) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gpus = append([]domain.GPU(nil), gpus...)
	return s.persist()
}

// Add appends a new GPU. The caller must supply a fresh id; a colliding id
// silently shadows the existing record.
func (s *Store) Add(g domain.GPU) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gpus = append(s.gpus, g)
	return s.persist()
}

// UpdateStock sets the stock of the matching GPU. Unknown ids are a silent
// no-op. The value is stored as given; the calling layer validates it.
func (s *Store) UpdateStock(id string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.gpus {
		if s.gpus[i].ID == id {
			s.gpus[i].Stock = stock
			return s.persist()
		}
	}
	return nil
}

// Remove deletes the matching GPU. Unknown ids are a silent no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.gpus {
		if s.gpus[i].ID == id {
			s.gpus = append(s.gpus[:i], s.gpus[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// List returns a copy of the current catalog.
func (s *Store) List() []domain.GPU {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.GPU(nil), s.gpus...)
}

// Get returns the GPU with the given id or domain.ErrNotFound.
func (s *Store) Get(id string) (domain.GPU, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.gpus {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.GPU{}, domain.ErrNotFound
}

func (s *Store) persist() error {
	if err := s.storage.Save(StorageKey, s.gpus); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	return nil
}
