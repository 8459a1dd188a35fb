package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/juicedepot/internal/depot"
)

// ProductsHandler handles catalog endpoints.
type ProductsHandler struct {
	Depot *depot.Service
}

type productRequest struct {
	ProductName   string  `json:"productName"`
	BuyUnitPrice  float64 `json:"buyUnitPrice"`
	SaleUnitPrice float64 `json:"saleUnitPrice"`
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Depot.ListProducts(r.Context())
	if err != nil {
		serviceError(w, err, "failed to list products")
		return
	}
	jsonResponse(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.Depot.GetProduct(r.Context(), id)
	if err != nil {
		serviceError(w, err, "failed to get product")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.Depot.AddProduct(r.Context(), req.ProductName, req.BuyUnitPrice, req.SaleUnitPrice)
	if err != nil {
		serviceError(w, err, "failed to add product")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("product added", "product", product.ProductName, "id", product.ID, "by", claims.Username)
	jsonResponse(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.Depot.UpdateProduct(r.Context(), id, req.ProductName, req.BuyUnitPrice, req.SaleUnitPrice)
	if err != nil {
		serviceError(w, err, "failed to update product")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("product updated", "product", product.ProductName, "id", id, "by", claims.Username)
	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.Depot.DeleteProduct(r.Context(), id); err != nil {
		serviceError(w, err, "failed to delete product")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("product deleted", "id", id, "by", claims.Username)
	w.WriteHeader(http.StatusNoContent)
}
