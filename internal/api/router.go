package api

import (
	"net/http"

	"github.com/erazemk/juicedepot/internal/depot"
	"github.com/erazemk/juicedepot/internal/model"
	"github.com/erazemk/juicedepot/internal/report"
	"github.com/erazemk/juicedepot/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc *depot.Service, st *store.Store, jwtSecret string, renderer *report.Renderer) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Depot: svc, Store: st, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{Depot: svc}
	stockHandler := &StockHandler{Depot: svc}
	salesHandler := &SalesHandler{Depot: svc}
	reportsHandler := &ReportsHandler{Depot: svc, Renderer: renderer}

	authMW := AuthMiddleware(jwtSecret, st)
	requireOwner := RequireUserType(model.UserTypeOwner)

	// Public: login and signup.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/session", authMW(http.HandlerFunc(authHandler.Session)))

	// Catalog: all users, delete is owner only.
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", authMW(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("GET /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Update)))
	mux.Handle("DELETE /api/products/{id}", authMW(requireOwner(http.HandlerFunc(productsHandler.Delete))))

	// Stock, sales, inventory.
	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(stockHandler.Inventory)))
	mux.Handle("GET /api/stock", authMW(http.HandlerFunc(stockHandler.List)))
	mux.Handle("POST /api/stock", authMW(http.HandlerFunc(stockHandler.Create)))
	mux.Handle("GET /api/sales", authMW(http.HandlerFunc(salesHandler.List)))
	mux.Handle("POST /api/sales", authMW(http.HandlerFunc(salesHandler.Create)))

	// Reports.
	mux.Handle("GET /api/reports/general", authMW(http.HandlerFunc(reportsHandler.General)))
	mux.Handle("GET /api/reports/products/{id}", authMW(http.HandlerFunc(reportsHandler.Product)))

	return mux
}
