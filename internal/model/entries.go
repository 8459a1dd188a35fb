package model

// StockEntry records inventory received for a product.
type StockEntry struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Date      Date    `json:"date"`
}

// Amount is the purchase value of the entry.
func (e StockEntry) Amount() float64 {
	return float64(e.Quantity) * e.UnitPrice
}

// SaleEntry records inventory sold. ProductName is the product's name at
// the time of the sale and is not updated afterwards.
type SaleEntry struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	SaleUnitPrice float64 `json:"saleUnitPrice"`
	TotalAmount   float64 `json:"totalAmount"`
	Date          Date    `json:"date"`
	ProductName   string  `json:"productName"`
}
