package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/juicedepot/internal/depot"
)

// StockHandler handles stock intake and inventory endpoints.
type StockHandler struct {
	Depot *depot.Service
}

type stockRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// List handles GET /api/stock.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Depot.ListStockEntries(r.Context())
	if err != nil {
		serviceError(w, err, "failed to list stock entries")
		return
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Create handles POST /api/stock.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Depot.RecordStockIn(r.Context(), req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		serviceError(w, err, "failed to record stock")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("stock received", "product_id", entry.ProductID, "quantity", entry.Quantity, "by", claims.Username)
	jsonResponse(w, http.StatusCreated, entry)
}

// Inventory handles GET /api/inventory. Quantities are shown clamped at
// zero.
func (h *StockHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Depot.Availability(r.Context())
	if err != nil {
		serviceError(w, err, "failed to compute inventory")
		return
	}

	type inventoryRow struct {
		ProductID   int64  `json:"productId"`
		ProductName string `json:"productName"`
		Quantity    int    `json:"quantity"`
	}
	out := make([]inventoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventoryRow{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.DisplayQuantity(),
		})
	}
	jsonResponse(w, http.StatusOK, out)
}
