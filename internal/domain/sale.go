package domain

import "time"

// SaleStatus is a small state machine: pending may move to delivered or
// cancelled, both of which are terminal.
type SaleStatus string

const (
	StatusPending   SaleStatus = "pending"
	StatusDelivered SaleStatus = "delivered"
	StatusCancelled SaleStatus = "cancelled"
)

// Valid reports whether s is one of the known status values.
func (s SaleStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to target is legal. Setting a
// status to itself is always allowed.
func (s SaleStatus) CanTransition(target SaleStatus) bool {
	if s == target {
		return true
	}
	return s == StatusPending
}

// Customer is the contact record captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SaleItem is one line of a completed order, snapshotted from the cart.
type SaleItem struct {
	GPUID      string `json:"gpuId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Sale is a completed order. Items and TotalCents are immutable after
// creation; only Status changes afterwards.
type Sale struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	Customer   Customer   `json:"customer"`
	Items      []SaleItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	Status     SaleStatus `json:"status"`
}
