package depot

import (
	"cmp"
	"context"
	"slices"

	"github.com/erazemk/juicedepot/internal/ledger"
	"github.com/erazemk/juicedepot/internal/model"
)

// RecordSale appends a sale entry if the product has enough stock.
//
// A zero saleUnitPrice means the product's current sale price. An empty
// date means today.
func (s *Service) RecordSale(ctx context.Context, productID int64, quantity int, saleUnitPrice float64, date string) (*model.SaleEntry, error) {
	if quantity <= 0 {
		return nil, newError(ErrValidation, "quantity must be positive")
	}
	if saleUnitPrice < 0 {
		return nil, newError(ErrValidation, "sale unit price must be positive")
	}

	saleDate := s.today()
	if date != "" {
		d, err := model.ParseDate(date)
		if err != nil {
			return nil, newError(ErrValidation, "%v", err)
		}
		saleDate = d
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	i := findProduct(products, productID)
	if i < 0 {
		return nil, newError(ErrValidation, "product %d does not exist", productID)
	}
	product := products[i]

	if saleUnitPrice == 0 {
		saleUnitPrice = product.SaleUnitPrice
	}
	if !positive(saleUnitPrice) {
		return nil, newError(ErrValidation, "sale unit price must be positive")
	}

	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return nil, err
	}

	available := ledger.Available(productID, stock, sales)
	if quantity > available {
		return nil, newError(ErrInsufficientStock, "insufficient stock for %s: have %d, need %d",
			product.ProductName, max(available, 0), quantity)
	}

	sale := model.SaleEntry{
		ID:            nextID(sales, func(e model.SaleEntry) int64 { return e.ID }),
		ProductID:     productID,
		Quantity:      quantity,
		SaleUnitPrice: saleUnitPrice,
		TotalAmount:   float64(quantity) * saleUnitPrice,
		Date:          saleDate,
		ProductName:   product.ProductName,
	}
	if err := s.store.SaveSales(ctx, append(sales, sale)); err != nil {
		return nil, err
	}

	return &sale, nil
}

// ListSales returns sale entries, newest first.
func (s *Service) ListSales(ctx context.Context) ([]model.SaleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.Sales(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(sales, func(a, b model.SaleEntry) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return sales, nil
}
