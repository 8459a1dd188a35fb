package store

import (
	"testing"

	"github.com/erazemk/juicedepot/internal/kv"
)

// NewTestStore returns a store over a fresh in-memory SQLite database.
func NewTestStore(t *testing.T) *Store {
	t.Helper()
	return New(kv.NewTestSQLite(t), Options{ReseedCorrupt: true})
}
