package depot

import (
	"context"

	"github.com/erazemk/juicedepot/internal/ledger"
)

// Inventory returns the received quantity of every product.
func (s *Service) Inventory(ctx context.Context) ([]ledger.InventoryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ComputeInventory(products, stock), nil
}

// Availability returns the stock level of every product.
func (s *Service) Availability(ctx context.Context) ([]ledger.AvailabilityRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ComputeAvailability(products, stock, sales), nil
}

// AvailableQuantity returns the stock level of one product, including
// products that were deleted from the catalog.
func (s *Service) AvailableQuantity(ctx context.Context, productID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return 0, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return 0, err
	}
	return ledger.Available(productID, stock, sales), nil
}
