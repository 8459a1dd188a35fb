// Package ledger derives stock levels from the full stock-in and sale
// history. Nothing here is stored; every figure is recomputed from the
// entries passed in.
package ledger

import "github.com/erazemk/juicedepot/internal/model"

// InventoryRow is the received quantity of one product.
type InventoryRow struct {
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	TotalQuantity int     `json:"totalQuantity"`
	BuyUnitPrice  float64 `json:"buyUnitPrice"`
}

// AvailabilityRow is the stock level of one product.
type AvailabilityRow struct {
	ProductID         int64   `json:"productId"`
	ProductName       string  `json:"productName"`
	BuyUnitPrice      float64 `json:"buyUnitPrice"`
	SaleUnitPrice     float64 `json:"saleUnitPrice"`
	TotalQuantity     int     `json:"totalQuantity"`
	SoldQuantity      int     `json:"soldQuantity"`
	AvailableQuantity int     `json:"availableQuantity"`
}

// DisplayQuantity is the available quantity clamped at zero.
func (r AvailabilityRow) DisplayQuantity() int {
	return max(r.AvailableQuantity, 0)
}

// Received sums stock-in quantities per product.
func Received(stock []model.StockEntry) map[int64]int {
	totals := make(map[int64]int)
	for _, e := range stock {
		totals[e.ProductID] += e.Quantity
	}
	return totals
}

// Sold sums sale quantities per product.
func Sold(sales []model.SaleEntry) map[int64]int {
	totals := make(map[int64]int)
	for _, s := range sales {
		totals[s.ProductID] += s.Quantity
	}
	return totals
}

// ComputeInventory returns the received quantity of every product, in
// catalog order.
func ComputeInventory(products []model.Product, stock []model.StockEntry) []InventoryRow {
	received := Received(stock)
	rows := make([]InventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, InventoryRow{
			ProductID:     p.ID,
			ProductName:   p.ProductName,
			TotalQuantity: received[p.ID],
			BuyUnitPrice:  p.BuyUnitPrice,
		})
	}
	return rows
}

// ComputeAvailability returns received, sold and available quantities of
// every product, in catalog order. AvailableQuantity is not clamped.
func ComputeAvailability(products []model.Product, stock []model.StockEntry, sales []model.SaleEntry) []AvailabilityRow {
	received := Received(stock)
	sold := Sold(sales)
	rows := make([]AvailabilityRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, AvailabilityRow{
			ProductID:         p.ID,
			ProductName:       p.ProductName,
			BuyUnitPrice:      p.BuyUnitPrice,
			SaleUnitPrice:     p.SaleUnitPrice,
			TotalQuantity:     received[p.ID],
			SoldQuantity:      sold[p.ID],
			AvailableQuantity: received[p.ID] - sold[p.ID],
		})
	}
	return rows
}

// Available returns the available quantity of a single product.
func Available(productID int64, stock []model.StockEntry, sales []model.SaleEntry) int {
	n := 0
	for _, e := range stock {
		if e.ProductID == productID {
			n += e.Quantity
		}
	}
	for _, s := range sales {
		if s.ProductID == productID {
			n -= s.Quantity
		}
	}
	return n
}
