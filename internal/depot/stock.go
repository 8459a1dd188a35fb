package depot

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/erazemk/juicedepot/internal/ledger"
	"github.com/erazemk/juicedepot/internal/model"
)

// RecordStockIn appends a stock-in entry dated today.
func (s *Service) RecordStockIn(ctx context.Context, productID int64, quantity int, unitPrice float64) (*model.StockEntry, error) {
	if quantity <= 0 {
		return nil, newError(ErrValidation, "quantity must be positive")
	}
	if !positive(unitPrice) {
		return nil, newError(ErrValidation, "unit price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	if findProduct(products, productID) < 0 {
		return nil, newError(ErrValidation, "product %d does not exist", productID)
	}

	entries, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, err
	}
	// Sales never exceed what was received, so bounding the received total
	// keeps every stock figure of the product in range.
	if quantity > math.MaxInt-ledger.Received(entries)[productID] {
		return nil, newError(ErrValidation, "quantity too large: stock of product %d would overflow", productID)
	}

	entry := model.StockEntry{
		ID:        nextID(entries, func(e model.StockEntry) int64 { return e.ID }),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Date:      s.today(),
	}
	if err := s.store.SaveStockEntries(ctx, append(entries, entry)); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListStockEntries returns stock-in entries, newest first.
func (s *Service) ListStockEntries(ctx context.Context) ([]model.StockEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(entries, func(a, b model.StockEntry) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return entries, nil
}
