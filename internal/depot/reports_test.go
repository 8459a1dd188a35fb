package depot

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/juicedepot/internal/model"
)

func TestGeneralReport(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.RecordSale(ctx, 1, 30, 300, "2025-05-10")
	svc.RecordSale(ctx, 2, 5, 550, "2025-06-02")

	r, err := ParseRange("2025-05-01", "2025-05-31")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	rep, err := svc.GeneralReport(ctx, r)
	if err != nil {
		t.Fatalf("GeneralReport: %v", err)
	}

	if rep.Title != "Periodical General Report From: 2025-05-01 to 2025-05-31" {
		t.Errorf("unexpected title %q", rep.Title)
	}
	if len(rep.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rep.Rows))
	}

	small := rep.Rows[0]
	if small.Label != "Sina Gerard Small" || small.PurchasedQty != 50 || small.PurchasedAmount != 12500 ||
		small.SoldQty != 30 || small.SoldAmount != 9000 || small.Remaining != 20 {
		t.Errorf("unexpected row for product 1: %+v", small)
	}

	// The June sale is outside the range and not counted in remaining.
	big := rep.Rows[1]
	if big.SoldQty != 0 || big.Remaining != 30 {
		t.Errorf("unexpected row for product 2: %+v", big)
	}

	wantPurchased := 50*250.0 + 30*450.0 + 40*350.0 + 25*700.0
	if rep.Totals.PurchasedAmount != wantPurchased {
		t.Errorf("expected purchased total %v, got %v", wantPurchased, rep.Totals.PurchasedAmount)
	}
	if rep.Totals.SoldAmount != 9000 {
		t.Errorf("expected sold total 9000, got %v", rep.Totals.SoldAmount)
	}
	if rep.Totals.Label != "Total" {
		t.Errorf("expected totals label, got %q", rep.Totals.Label)
	}
}

func TestGeneralReportEmptyRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	r, _ := ParseRange("2024-01-01", "2024-01-31")
	rep, err := svc.GeneralReport(ctx, r)
	if err != nil {
		t.Fatalf("GeneralReport: %v", err)
	}
	if rep.Totals.PurchasedAmount != 0 || rep.Totals.SoldAmount != 0 {
		t.Errorf("expected zero totals before any history, got %+v", rep.Totals)
	}
	for _, row := range rep.Rows {
		if row.Remaining != 0 {
			t.Errorf("expected zero remaining for %s, got %d", row.Label, row.Remaining)
		}
	}
}

func TestGeneralReportKeepsDeletedProducts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.RecordSale(ctx, 4, 5, 800, "2025-05-10")
	if err := svc.DeleteProduct(ctx, 4); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	rep, err := svc.GeneralReport(ctx, model.DateRange{})
	if err != nil {
		t.Fatalf("GeneralReport: %v", err)
	}
	if len(rep.Rows) != 4 {
		t.Fatalf("expected deleted product to stay listed, got %d rows", len(rep.Rows))
	}
	last := rep.Rows[3]
	if last.ProductID != 4 || last.Label != "Energy Drink (deleted)" || last.SoldQty != 5 || last.Remaining != 20 {
		t.Errorf("unexpected deleted product row: %+v", last)
	}

	// Without a sale snapshot, the id is shown.
	svc.DeleteProduct(ctx, 3)
	rep, _ = svc.GeneralReport(ctx, model.DateRange{})
	found := false
	for _, row := range rep.Rows {
		if row.ProductID == 3 {
			found = true
			if row.Label != "Deleted product #3" {
				t.Errorf("expected placeholder label, got %q", row.Label)
			}
		}
	}
	if !found {
		t.Error("expected product 3 history to be listed")
	}
}

func TestProductReport(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.RecordSale(ctx, 1, 10, 300, "2025-05-03")
	svc.RecordSale(ctx, 1, 5, 310, "2025-05-03")
	svc.RecordSale(ctx, 1, 20, 300, "2025-05-20")
	svc.RecordSale(ctx, 2, 1, 550, "2025-05-03")

	r, _ := ParseRange("2025-05-02", "2025-05-10")
	rep, err := svc.ProductReport(ctx, 1, r)
	if err != nil {
		t.Fatalf("ProductReport: %v", err)
	}

	if rep.Title != "Periodical Report for Sina Gerard Small From: 2025-05-02 to 2025-05-10" {
		t.Errorf("unexpected title %q", rep.Title)
	}
	if len(rep.Rows) != 1 {
		t.Fatalf("expected 1 dated row, got %d: %+v", len(rep.Rows), rep.Rows)
	}

	row := rep.Rows[0]
	if row.Label != "2025-05-03" || row.SoldQty != 15 || row.SoldAmount != 3000+1550 {
		t.Errorf("unexpected row: %+v", row)
	}
	// Stock received on 2025-05-01 is before the range and not counted.
	if row.Remaining != -15 {
		t.Errorf("expected -15 remaining, got %d", row.Remaining)
	}
	if rep.Totals.SoldAmount != 4550 || rep.Totals.PurchasedAmount != 0 {
		t.Errorf("unexpected totals: %+v", rep.Totals)
	}
}

func TestProductReportRowRemaining(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	st.SaveStockEntries(ctx, []model.StockEntry{
		{ID: 1, ProductID: 1, Quantity: 10, UnitPrice: 500, Date: "2025-05-01"},
		{ID: 2, ProductID: 1, Quantity: 5, UnitPrice: 500, Date: "2025-05-03"},
		{ID: 3, ProductID: 1, Quantity: 8, UnitPrice: 500, Date: "2025-05-05"},
	})
	st.SaveSales(ctx, []model.SaleEntry{
		{ID: 1, ProductID: 1, Quantity: 8, SaleUnitPrice: 600, TotalAmount: 4800, Date: "2025-05-01", ProductName: "Sina Gerard Small"},
		{ID: 2, ProductID: 1, Quantity: 4, SaleUnitPrice: 600, TotalAmount: 2400, Date: "2025-05-03", ProductName: "Sina Gerard Small"},
		{ID: 3, ProductID: 1, Quantity: 5, SaleUnitPrice: 600, TotalAmount: 3000, Date: "2025-05-05", ProductName: "Sina Gerard Small"},
	})

	rep, err := svc.ProductReport(ctx, 1, model.DateRange{From: "2025-05-01", To: "2025-05-05"})
	if err != nil {
		t.Fatalf("ProductReport: %v", err)
	}

	want := []struct {
		date      string
		remaining int
	}{
		{"2025-05-01", 2},
		{"2025-05-03", 1},
		{"2025-05-05", 3},
	}
	if len(rep.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rep.Rows))
	}
	for i, w := range want {
		if rep.Rows[i].Label != w.date || rep.Rows[i].Remaining != w.remaining {
			t.Errorf("row %d: got %s/%d, want %s/%d", i, rep.Rows[i].Label, rep.Rows[i].Remaining, w.date, w.remaining)
		}
	}
	wantTotals := model.ReportTotals{Label: "Total", PurchasedAmount: 11500, SoldAmount: 10200}
	if rep.Totals != wantTotals {
		t.Errorf("expected totals %+v, got %+v", wantTotals, rep.Totals)
	}
}

func TestProductReportErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ProductReport(ctx, 99, model.DateRange{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	reversed := model.DateRange{From: "2025-06-01", To: "2025-05-01"}
	if _, err := svc.ProductReport(ctx, 1, reversed); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.GeneralReport(ctx, reversed); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if _, err := ParseRange("2025-13-01", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for bad date, got %v", err)
	}
}
