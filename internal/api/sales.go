package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/juicedepot/internal/depot"
)

// SalesHandler handles sale endpoints.
type SalesHandler struct {
	Depot *depot.Service
}

type saleRequest struct {
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	SaleUnitPrice float64 `json:"saleUnitPrice"`
	Date          string  `json:"date"`
}

// List handles GET /api/sales.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Depot.ListSales(r.Context())
	if err != nil {
		serviceError(w, err, "failed to list sales")
		return
	}
	jsonResponse(w, http.StatusOK, sales)
}

// Create handles POST /api/sales.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.Depot.RecordSale(r.Context(), req.ProductID, req.Quantity, req.SaleUnitPrice, req.Date)
	if err != nil {
		serviceError(w, err, "failed to record sale")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("sale recorded", "product", sale.ProductName, "quantity", sale.Quantity, "total", sale.TotalAmount, "by", claims.Username)
	jsonResponse(w, http.StatusCreated, sale)
}
