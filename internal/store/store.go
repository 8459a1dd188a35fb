// Package store is the typed adapter between the depot and its key-value
// backend. Each collection is stored as one JSON array under a fixed key
// and is seeded on first access.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/erazemk/juicedepot/internal/kv"
	"github.com/erazemk/juicedepot/internal/model"
)

// Collection keys.
const (
	KeyUsers         = "users"
	KeyProducts      = "products"
	KeyStockEntries  = "stockIn"
	KeySales         = "sales"
	KeySettings      = "settings"
	KeyRevokedTokens = "revokedTokens"
)

// ErrCorruptState matches every CorruptStateError.
var ErrCorruptState = errors.New("corrupt stored state")

// CorruptStateError reports a stored collection that could not be decoded.
type CorruptStateError struct {
	Collection string
	Err        error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("collection %s is corrupt: %v", e.Collection, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

func (e *CorruptStateError) Is(target error) bool { return target == ErrCorruptState }

// Options configures a Store.
type Options struct {
	// ReseedCorrupt replaces an undecodable collection with its seed
	// instead of failing with a CorruptStateError.
	ReseedCorrupt bool
}

// Store loads and saves the depot's collections.
type Store struct {
	kv   kv.Store
	opts Options

	// mu guards the settings and revoked-token read-modify-writes.
	mu sync.Mutex
}

// New wraps a key-value backend.
func New(backend kv.Store, opts Options) *Store {
	return &Store{kv: backend, opts: opts}
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Users returns the user collection.
func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	return load(ctx, s, KeyUsers, SeedUsers)
}

// SaveUsers replaces the user collection.
func (s *Store) SaveUsers(ctx context.Context, users []model.User) error {
	return save(ctx, s, KeyUsers, users)
}

// Products returns the product collection.
func (s *Store) Products(ctx context.Context) ([]model.Product, error) {
	return load(ctx, s, KeyProducts, SeedProducts)
}

// SaveProducts replaces the product collection.
func (s *Store) SaveProducts(ctx context.Context, products []model.Product) error {
	return save(ctx, s, KeyProducts, products)
}

// StockEntries returns the stock-in collection.
func (s *Store) StockEntries(ctx context.Context) ([]model.StockEntry, error) {
	return load(ctx, s, KeyStockEntries, SeedStockEntries)
}

// SaveStockEntries replaces the stock-in collection.
func (s *Store) SaveStockEntries(ctx context.Context, entries []model.StockEntry) error {
	return save(ctx, s, KeyStockEntries, entries)
}

// Sales returns the sale collection.
func (s *Store) Sales(ctx context.Context) ([]model.SaleEntry, error) {
	return load(ctx, s, KeySales, SeedSales)
}

// SaveSales replaces the sale collection.
func (s *Store) SaveSales(ctx context.Context, sales []model.SaleEntry) error {
	return save(ctx, s, KeySales, sales)
}

func load[T any](ctx context.Context, s *Store, key string, seed func() []T) ([]T, error) {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	if ok {
		var records []T
		err := json.Unmarshal(data, &records)
		if err == nil {
			if records == nil {
				records = []T{}
			}
			return records, nil
		}

		corrupt := &CorruptStateError{Collection: key, Err: err}
		if !s.opts.ReseedCorrupt {
			return nil, corrupt
		}
		slog.Warn("reseeding corrupt collection", "collection", key, "error", err)
	}

	records := seed()
	if err := save(ctx, s, key, records); err != nil {
		return nil, fmt.Errorf("seeding %s: %w", key, err)
	}
	return records, nil
}

func save[T any](ctx context.Context, s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
