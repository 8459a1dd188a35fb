package kv

import "testing"

// NewTestSQLite creates a fresh in-memory SQLite store with the schema applied.
func NewTestSQLite(t *testing.T) *SQLStore {
	t.Helper()

	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() { s.Close() })

	return s
}
