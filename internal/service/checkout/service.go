// Package checkout sequences the cross-store transaction that turns a cart
// into a recorded sale: stock decrement, sale recording, cart clearing.
package checkout

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"gpupos/internal/domain"
	"gpupos/internal/ident"
)

type cartStore interface {
	Get(sessionID string) domain.Cart
	Clear(sessionID string) error
}

type salesStore interface {
	Record(sale domain.Sale) error
}

type inventoryStore interface {
	Get(id string) (domain.GPU, error)
	UpdateStock(id string, stock int) error
}

type Service struct {
	carts     cartStore
	sales     salesStore
	inventory inventoryStore
	logger    *log.Logger
}

func New(carts cartStore, sales salesStore, inventory inventoryStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, sales: sales, inventory: inventory, logger: logger}
}

// CustomerInput is the contact record submitted with a checkout.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ErrEmptyCart rejects a checkout submitted without any cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// Submit records a sale from the session's current cart, decrements stock
// for every line, and clears the cart. Stock decrements are rolled back if
// recording fails, leaving cart and inventory as they were.
func (s *Service) Submit(sessionID string, in CustomerInput) (*domain.Sale, error) {
	customer, err := validateCustomer(in)
	if err != nil {
		return nil, err
	}

	cart := s.carts.Get(sessionID)
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	sale := domain.Sale{
		ID:         ident.New("sale"),
		CreatedAt:  time.Now().UTC(),
		Customer:   customer,
		Items:      make([]domain.SaleItem, 0, len(cart.Lines)),
		TotalCents: cart.TotalCents,
		Status:     domain.StatusPending,
	}
	for _, line := range cart.Lines {
		sale.Items = append(sale.Items, domain.SaleItem{
			GPUID:      line.GPUID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
		})
	}

	applied, err := s.decrementStock(cart.Lines)
	if err != nil {
		s.restoreStock(applied)
		return nil, err
	}

	if err := s.sales.Record(sale); err != nil {
		s.restoreStock(applied)
		return nil, fmt.Errorf("record sale: %w", err)
	}

	if err := s.carts.Clear(sessionID); err != nil {
		// The sale is already recorded; surface the error so the caller
		// knows the cart may still hold the sold lines.
		return &sale, fmt.Errorf("clear cart: %w", err)
	}

	s.logger.Printf("checkout: session=%s sale=%s total_cents=%d", sessionID, sale.ID, sale.TotalCents)
	return &sale, nil
}

type stockChange struct {
	gpuID    string
	previous int
}

func (s *Service) decrementStock(lines []domain.CartLine) ([]stockChange, error) {
	var applied []stockChange
	for _, line := range lines {
		gpu, err := s.inventory.Get(line.GPUID)
		if errors.Is(err, domain.ErrNotFound) {
			// Removed from the catalog since it was added; nothing to decrement.
			continue
		}
		if err != nil {
			return applied, err
		}
		next := gpu.Stock - line.Quantity
		if next < 0 {
			next = 0
		}
		if err := s.inventory.UpdateStock(gpu.ID, next); err != nil {
			return applied, err
		}
		applied = append(applied, stockChange{gpuID: gpu.ID, previous: gpu.Stock})
	}
	return applied, nil
}

func (s *Service) restoreStock(applied []stockChange) {
	for _, change := range applied {
		if err := s.inventory.UpdateStock(change.gpuID, change.previous); err != nil {
			s.logger.Printf("checkout: rollback stock gpu=%s error=%v", change.gpuID, err)
		}
	}
}

func validateCustomer(in CustomerInput) (domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return domain.Customer{}, errors.New("name required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.Customer{}, errors.New("valid email required")
	}
	return domain.Customer{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}, nil
}
