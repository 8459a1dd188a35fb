package depot

import (
	"context"
	"strings"

	"github.com/erazemk/juicedepot/internal/model"
)

// ListProducts returns the catalog.
func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Products(ctx)
}

// GetProduct returns a product by ID.
func (s *Service) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	i := findProduct(products, id)
	if i < 0 {
		return nil, newError(ErrNotFound, "product %d not found", id)
	}
	p := products[i]
	return &p, nil
}

// AddProduct creates a product.
func (s *Service) AddProduct(ctx context.Context, name string, buyPrice, salePrice float64) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProduct(name, buyPrice, salePrice); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.nextProductID(ctx, products)
	if err != nil {
		return nil, err
	}

	p := model.Product{ID: id, ProductName: name, BuyUnitPrice: buyPrice, SaleUnitPrice: salePrice}
	if err := s.store.SaveProducts(ctx, append(products, p)); err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateProduct replaces a product's name and prices.
func (s *Service) UpdateProduct(ctx context.Context, id int64, name string, buyPrice, salePrice float64) (*model.Product, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	i := findProduct(products, id)
	if i < 0 {
		return nil, newError(ErrNotFound, "product %d not found", id)
	}
	if err := validateProduct(name, buyPrice, salePrice); err != nil {
		return nil, err
	}

	products[i] = model.Product{ID: id, ProductName: name, BuyUnitPrice: buyPrice, SaleUnitPrice: salePrice}
	if err := s.store.SaveProducts(ctx, products); err != nil {
		return nil, err
	}

	p := products[i]
	return &p, nil
}

// DeleteProduct removes a product from the catalog. Its stock and sale
// history is kept; reports list it under its last known name.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Products(ctx)
	if err != nil {
		return err
	}
	i := findProduct(products, id)
	if i < 0 {
		return newError(ErrNotFound, "product %d not found", id)
	}

	products = append(products[:i], products[i+1:]...)
	return s.store.SaveProducts(ctx, products)
}

func validateProduct(name string, buyPrice, salePrice float64) error {
	if name == "" {
		return newError(ErrValidation, "product name required")
	}
	if !positive(buyPrice) {
		return newError(ErrValidation, "buy unit price must be positive")
	}
	if !positive(salePrice) {
		return newError(ErrValidation, "sale unit price must be positive")
	}
	return nil
}

func findProduct(products []model.Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nextProductID allocates above every live product and every product
// referenced by history, so a new product never inherits a deleted
// product's entries.
func (s *Service) nextProductID(ctx context.Context, products []model.Product) (int64, error) {
	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return 0, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, p := range products {
		maxID = max(maxID, p.ID)
	}
	for _, e := range stock {
		maxID = max(maxID, e.ProductID)
	}
	for _, e := range sales {
		maxID = max(maxID, e.ProductID)
	}
	return maxID + 1, nil
}

// nextID returns one above the largest ID in records.
func nextID[T any](records []T, id func(T) int64) int64 {
	var maxID int64
	for _, r := range records {
		maxID = max(maxID, id(r))
	}
	return maxID + 1
}
