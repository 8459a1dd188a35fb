package model

// Product is a catalog entry sold by the depot.
type Product struct {
	ID            int64   `json:"id"`
	ProductName   string  `json:"productName"`
	BuyUnitPrice  float64 `json:"buyUnitPrice"`
	SaleUnitPrice float64 `json:"saleUnitPrice"`
}
