// Package sales owns the append-only history of completed orders. Records
// never leave the collection; only their status moves through the
// pending → delivered/cancelled state machine.
package sales

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"gpupos/internal/domain"
	"gpupos/internal/storage"
)

// StorageKey is the logical name the sales history is persisted under.
const StorageKey = "gpu-sales"

type Store struct {
	mu      sync.RWMutex
	storage storage.Store
	logger  *log.Logger
	sales   []domain.Sale
}

// Summary aggregates the sales history for the dashboard.
type Summary struct {
	TotalRevenueCents int64 `json:"totalRevenueCents"`
	TotalOrders       int   `json:"totalOrders"`
	ItemsSold         int   `json:"itemsSold"`
	AverageOrderCents int64 `json:"averageOrderCents"`
}

func New(st storage.Store, logger *log.Logger) *Store {
	if st == nil {
		panic("sales: nil storage")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: st, logger: logger}
}

// Hydrate loads the persisted history; no snapshot means no sales yet.
func (s *Store) Hydrate() error {
	var sales []domain.Sale
	err := s.storage.Load(StorageKey, &sales)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		return nil
	case err != nil:
		return fmt.Errorf("hydrate sales: %w", err)
	}
	s.mu.Lock()
	s.sales = sales
	s.mu.Unlock()
	s.logger.Printf("sales: hydrated %d sales", len(sales))
	return nil
}

// Record appends a new sale. The status always starts at pending regardless
// of what the caller put in the record.
func (s *Store) Record(sale domain.Sale) error {
	sale.Status = domain.StatusPending
	sale.Items = append([]domain.SaleItem(nil), sale.Items...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
	s.logger.Printf("sales: recorded id=%s total_cents=%d items=%d", sale.ID, sale.TotalCents, len(sale.Items))
	return s.persist()
}

// UpdateStatus moves the matching sale to the target status. Unknown status
// values and transitions out of a terminal status are errors; an unknown id
// is a silent no-op.
func (s *Store) UpdateStatus(id string, status domain.SaleStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID != id {
			continue
		}
		if !s.sales[i].Status.CanTransition(status) {
			return domain.ErrStatusFinal
		}
		if s.sales[i].Status == status {
			return nil
		}
		s.sales[i].Status = status
		s.logger.Printf("sales: status id=%s -> %s", id, status)
		return s.persist()
	}
	return nil
}

// Get returns the sale with the given id or domain.ErrNotFound.
func (s *Store) Get(id string) (domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			sale.Items = append([]domain.SaleItem(nil), sale.Items...)
			return sale, nil
		}
	}
	return domain.Sale{}, domain.ErrNotFound
}

// List returns a copy of the history in insertion order.
func (s *Store) List() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sale, len(s.sales))
	for i, sale := range s.sales {
		sale.Items = append([]domain.SaleItem(nil), sale.Items...)
		out[i] = sale
	}
	return out
}

// Summarize computes dashboard totals over the whole history.
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum Summary
	for _, sale := range s.sales {
		sum.TotalRevenueCents += sale.TotalCents
		sum.TotalOrders++
		for _, item := range sale.Items {
			sum.ItemsSold += item.Quantity
		}
	}
	if sum.TotalOrders > 0 {
		sum.AverageOrderCents = sum.TotalRevenueCents / int64(sum.TotalOrders)
	}
	return sum
}

func (s *Store) persist() error {
	if err := s.storage.Save(StorageKey, s.sales); err != nil {
		return fmt.Errorf("persist sales: %w", err)
	}
	return nil
}
