package store

import "github.com/erazemk/juicedepot/internal/model"

// SeedUsers returns the accounts created on first run.
func SeedUsers() []model.User {
	return []model.User{
		{ID: 1, Username: "owner", Password: "owner123", UserType: model.UserTypeOwner},
		{ID: 2, Username: "worker", Password: "worker123", UserType: model.UserTypeWorker},
	}
}

// SeedProducts returns the catalog created on first run.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, ProductName: "Sina Gerard Small", BuyUnitPrice: 250, SaleUnitPrice: 300},
		{ID: 2, ProductName: "Sina Gerard Big", BuyUnitPrice: 450, SaleUnitPrice: 550},
		{ID: 3, ProductName: "AZAM Industries", BuyUnitPrice: 350, SaleUnitPrice: 420},
		{ID: 4, ProductName: "Energy Drink", BuyUnitPrice: 700, SaleUnitPrice: 800},
	}
}

// SeedStockEntries returns the stock received before first run.
func SeedStockEntries() []model.StockEntry {
	return []model.StockEntry{
		{ID: 1, ProductID: 1, Quantity: 50, UnitPrice: 250, Date: "2025-05-01"},
		{ID: 2, ProductID: 2, Quantity: 30, UnitPrice: 450, Date: "2025-05-01"},
		{ID: 3, ProductID: 3, Quantity: 40, UnitPrice: 350, Date: "2025-05-02"},
		{ID: 4, ProductID: 4, Quantity: 25, UnitPrice: 700, Date: "2025-05-02"},
	}
}

// SeedSales returns an empty sale history.
func SeedSales() []model.SaleEntry {
	return []model.SaleEntry{}
}
