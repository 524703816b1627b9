package cart

import (
	"encoding/json"
	"testing"

	"gpupos/internal/domain"
	"gpupos/internal/storage"
)

type stubStorage struct {
	data map[string][]byte
}

func newStubStorage() *stubStorage {
	return &stubStorage{data: make(map[string][]byte)}
}

func (s *stubStorage) Save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = b
	return nil
}

func (s *stubStorage) Load(key string, v any) error {
	b, ok := s.data[key]
	if !ok {
		return storage.ErrNoSnapshot
	}
	return json.Unmarshal(b, v)
}

func rtx4090() domain.GPU {
	return domain.GPU{
		ID:           "1",
		Name:         "GeForce RTX 4090",
		Manufacturer: "NVIDIA",
		Memory:       "24GB GDDR6X",
		PriceCents:   159900,
		Stock:        15,
		Image:        "/GeForce RTX 4090.png",
	}
}

func rtx4080() domain.GPU {
	return domain.GPU{ID: "2", Name: "GeForce RTX 4080", PriceCents: 119900, Stock: 22}
}

func TestAddItemCreatesLine(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}

	cart := store.Get("s1")
	if len(cart.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.GPUID != "1" || line.Name != "GeForce RTX 4090" || line.Manufacturer != "NVIDIA" {
		t.Fatalf("fields not copied: %+v", line)
	}
	if line.Quantity != 1 || line.StockCeiling != 15 {
		t.Fatalf("expected quantity 1 ceiling 15, got %+v", line)
	}
	if cart.TotalCents != 159900 {
		t.Fatalf("expected total 159900, got %d", cart.TotalCents)
	}
}

func TestAddItemCapsAtStockCeiling(t *testing.T) {
	store := New(newStubStorage(), nil)
	for i := 0; i < 16; i++ {
		if err := store.AddItem("s1", rtx4090()); err != nil {
			t.Fatalf("add item %d: %v", i, err)
		}
	}
	cart := store.Get("s1")
	if cart.Lines[0].Quantity != 15 {
		t.Fatalf("expected quantity capped at 15, got %d", cart.Lines[0].Quantity)
	}
	if cart.TotalCents != 15*159900 {
		t.Fatalf("expected total %d, got %d", 15*159900, cart.TotalCents)
	}
}

func TestAddItemCeilingFixedAtFirstAdd(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	// Stock changes in the catalog after the line exists must not move the
	// ceiling; line data is a copy.
	restocked := rtx4090()
	restocked.Stock = 99
	if err := store.AddItem("s1", restocked); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if got := store.Get("s1").Lines[0].StockCeiling; got != 15 {
		t.Fatalf("expected ceiling 15, got %d", got)
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.UpdateQuantity("s1", "1", 4); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	cart := store.Get("s1")
	if cart.Lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", cart.Lines[0].Quantity)
	}
	if cart.TotalCents != 4*159900 {
		t.Fatalf("expected total %d, got %d", 4*159900, cart.TotalCents)
	}
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	for _, q := range []int{0, -3} {
		store := New(newStubStorage(), nil)
		if err := store.AddItem("s1", rtx4090()); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if err := store.UpdateQuantity("s1", "1", q); err != nil {
			t.Fatalf("update quantity %d: %v", q, err)
		}
		cart := store.Get("s1")
		if len(cart.Lines) != 0 {
			t.Fatalf("quantity %d: expected line removed, got %+v", q, cart.Lines)
		}
		if cart.TotalCents != 0 {
			t.Fatalf("quantity %d: expected zero total, got %d", q, cart.TotalCents)
		}
	}
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.UpdateQuantity("s1", "missing", 3); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if got := store.Get("s1"); len(got.Lines) != 1 || got.Lines[0].Quantity != 1 {
		t.Fatalf("state changed unexpectedly: %+v", got)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.RemoveItem("s1", "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	after := store.Get("s1")
	if err := store.RemoveItem("s1", "1"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	again := store.Get("s1")
	if len(after.Lines) != 0 || len(again.Lines) != 0 || after.TotalCents != again.TotalCents {
		t.Fatalf("remove not idempotent: %+v vs %+v", after, again)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.AddItem("s1", rtx4080()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.Clear("s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart := store.Get("s1")
	if len(cart.Lines) != 0 || cart.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := New(newStubStorage(), nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := store.AddItem("s2", rtx4080()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if got := store.Get("s1"); len(got.Lines) != 1 || got.Lines[0].GPUID != "1" {
		t.Fatalf("unexpected s1 cart: %+v", got)
	}
	if got := store.Get("s2"); len(got.Lines) != 1 || got.Lines[0].GPUID != "2" {
		t.Fatalf("unexpected s2 cart: %+v", got)
	}
}

func TestHydrateRestoresCarts(t *testing.T) {
	st := newStubStorage()
	store := New(st, nil)
	if err := store.AddItem("s1", rtx4090()); err != nil {
		t.Fatalf("add item: %v", err)
	}

	restarted := New(st, nil)
	if err := restarted.Hydrate(); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	cart := restarted.Get("s1")
	if len(cart.Lines) != 1 || cart.TotalCents != 159900 {
		t.Fatalf("unexpected hydrated cart: %+v", cart)
	}
}
