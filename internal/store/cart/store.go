// Package cart owns the shopping carts of anonymous sessions. Each cart
// holds per-GPU lines copied by value from the catalog at add time; the cart
// total is derived from the lines and never settable on its own.
package cart

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"gpupos/internal/domain"
	"gpupos/internal/storage"
)

// StorageKey is the logical name all carts are persisted under, keyed inside
// the snapshot by session id.
const StorageKey = "gpu-carts"

type Store struct {
	mu      sync.Mutex
	storage storage.Store
	logger  *log.Logger
	carts   map[string]*domain.Cart
}

func New(st storage.Store, logger *log.Logger) *Store {
	if st == nil {
		panic("cart: nil storage")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: st, logger: logger, carts: make(map[string]*domain.Cart)}
}

// Hydrate loads persisted carts; no snapshot means no open carts.
func (s *Store) Hydrate() error {
	var carts map[string]*domain.Cart
	err := s.storage.Load(StorageKey, &carts)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		return nil
	case err != nil:
		return fmt.Errorf("hydrate carts: %w", err)
	}
	s.mu.Lock()
	if carts != nil {
		s.carts = carts
	}
	s.mu.Unlock()
	s.logger.Printf("cart: hydrated %d carts", len(carts))
	return nil
}

// AddItem puts one unit of the GPU into the session's cart. An existing line
// is incremented, silently capped at the stock ceiling recorded when the line
// was created. A new line copies the GPU's fields and adopts its current
// stock as the ceiling. Rejecting an out-of-stock GPU is the caller's job.
func (s *Store) AddItem(sessionID string, g domain.GPU) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	for i := range c.Lines {
		if c.Lines[i].GPUID == g.ID {
			if c.Lines[i].Quantity < c.Lines[i].StockCeiling {
				c.Lines[i].Quantity++
			}
			return s.finish(c)
		}
	}
	c.Lines = append(c.Lines, domain.CartLine{
		GPUID:        g.ID,
		Name:         g.Name,
		Manufacturer: g.Manufacturer,
		Memory:       g.Memory,
		PriceCents:   g.PriceCents,
		Image:        g.Image,
		StockCeiling: g.Stock,
		Quantity:     1,
	})
	return s.finish(c)
}

// UpdateQuantity sets the quantity on the matching line. A quantity below 1
// deletes the line instead; a zero-quantity line never exists.
func (s *Store) UpdateQuantity(sessionID, gpuID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(sessionID, gpuID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil
	}
	for i := range c.Lines {
		if c.Lines[i].GPUID == gpuID {
			c.Lines[i].Quantity = quantity
			return s.finish(c)
		}
	}
	return nil
}

// RemoveItem deletes the line for the GPU. Idempotent.
func (s *Store) RemoveItem(sessionID, gpuID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil
	}
	for i := range c.Lines {
		if c.Lines[i].GPUID == gpuID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return s.finish(c)
		}
	}
	return nil
}

// Clear empties the session's cart. Invoked once per successful checkout.
func (s *Store) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[sessionID]; !ok {
		return nil
	}
	delete(s.carts, sessionID)
	return s.persist()
}

// Get returns a copy of the session's cart, empty if none exists.
func (s *Store) Get(sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return domain.Cart{SessionID: sessionID}
	}
	out := domain.Cart{
		SessionID:  c.SessionID,
		Lines:      append([]domain.CartLine(nil), c.Lines...),
		TotalCents: c.TotalCents,
	}
	return out
}

func (s *Store) cart(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &domain.Cart{SessionID: sessionID}
		s.carts[sessionID] = c
	}
	return c
}

// finish recomputes the derived total and persists all carts. Called with
// the lock held after every mutation.
func (s *Store) finish(c *domain.Cart) error {
	var total int64
	for _, l := range c.Lines {
		total += l.PriceCents * int64(l.Quantity)
	}
	c.TotalCents = total
	return s.persist()
}

func (s *Store) persist() error {
	if err := s.storage.Save(StorageKey, s.carts); err != nil {
		return fmt.Errorf("persist carts: %w", err)
	}
	return nil
}
