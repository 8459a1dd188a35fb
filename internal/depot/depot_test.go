package depot

import (
	"context"
	"testing"
	"time"

	"github.com/erazemk/juicedepot/internal/store"
)

var testNow = time.Date(2025, time.May, 10, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*Service, *store.Store) {
	t.Helper()
	st := store.NewTestStore(t)
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return New(st, opts...), st
}

// clearHistory empties the stock and sale collections, keeping the seeded catalog.
func clearHistory(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	if err := st.SaveStockEntries(ctx, nil); err != nil {
		t.Fatalf("clearing stock: %v", err)
	}
	if err := st.SaveSales(ctx, nil); err != nil {
		t.Fatalf("clearing sales: %v", err)
	}
}
