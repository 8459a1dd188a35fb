package depot

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestRecordStockIn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, _ := svc.AvailableQuantity(ctx, 2)

	e, err := svc.RecordStockIn(ctx, 2, 12, 440)
	if err != nil {
		t.Fatalf("RecordStockIn: %v", err)
	}
	if e.ID != 5 {
		t.Errorf("expected id 5 after 4 seeded entries, got %d", e.ID)
	}
	if e.Date != "2025-05-10" {
		t.Errorf("expected today's date, got %q", e.Date)
	}

	after, _ := svc.AvailableQuantity(ctx, 2)
	if after-before != 12 {
		t.Errorf("expected availability to rise by 12, got %d -> %d", before, after)
	}

	// The product itself is not modified.
	p, _ := svc.GetProduct(ctx, 2)
	if p.BuyUnitPrice != 450 {
		t.Errorf("expected product buy price unchanged, got %v", p.BuyUnitPrice)
	}
}

func TestRecordStockInValidation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		productID int64
		quantity  int
		price     float64
	}{
		{99, 10, 100},
		{0, 10, 100},
		{1, 0, 100},
		{1, -3, 100},
		{1, 10, 0},
		{1, 10, -1},
	}

	for _, tt := range tests {
		_, err := svc.RecordStockIn(ctx, tt.productID, tt.quantity, tt.price)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("RecordStockIn(%d, %d, %v): expected ErrValidation, got %v", tt.productID, tt.quantity, tt.price, err)
		}
	}

	entries, _ := st.StockEntries(ctx)
	if len(entries) != 4 {
		t.Errorf("expected no entries appended, got %d", len(entries))
	}
}

func TestStockIDsIncrease(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		e, err := svc.RecordStockIn(ctx, 1, 1, 250)
		if err != nil {
			t.Fatalf("RecordStockIn: %v", err)
		}
		if e.ID <= last {
			t.Errorf("expected increasing ids, got %d after %d", e.ID, last)
		}
		last = e.ID
	}

	entries, _ := svc.ListStockEntries(ctx)
	if entries[0].ID != last {
		t.Errorf("expected newest entry first, got %d", entries[0].ID)
	}
}

func TestRecordStockInRejectsOverflow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// 50 units are seeded for product 1.
	if _, err := svc.RecordStockIn(ctx, 1, math.MaxInt-50, 1); err != nil {
		t.Fatalf("RecordStockIn up to the limit: %v", err)
	}
	if _, err := svc.RecordStockIn(ctx, 1, 1, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation past the limit, got %v", err)
	}
	if _, err := svc.RecordStockIn(ctx, 1, math.MaxInt, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for huge quantity, got %v", err)
	}

	avail, _ := svc.AvailableQuantity(ctx, 1)
	if avail != math.MaxInt {
		t.Fatalf("expected availability %d, got %d", math.MaxInt, avail)
	}

	// Other products are unaffected by product 1's total.
	if _, err := svc.RecordStockIn(ctx, 2, 1, 450); err != nil {
		t.Errorf("RecordStockIn for another product: %v", err)
	}

	if _, err := svc.RecordSale(ctx, 1, 1, 0, ""); err != nil {
		t.Fatalf("RecordSale after large stock-in: %v", err)
	}
	if _, err := svc.RecordSale(ctx, 1, math.MaxInt, 0, ""); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if _, err := svc.RecordSale(ctx, 1, math.MaxInt-1, 0, ""); err != nil {
		t.Errorf("RecordSale of the remaining stock: %v", err)
	}
	if avail, _ := svc.AvailableQuantity(ctx, 1); avail != 0 {
		t.Errorf("expected nothing left, got %d", avail)
	}
}
