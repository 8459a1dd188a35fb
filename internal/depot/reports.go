package depot

import (
	"context"
	"fmt"
	"slices"

	"github.com/erazemk/juicedepot/internal/model"
)

// ParseRange validates a report date range given as YYYY-MM-DD strings.
// Either bound may be empty.
func ParseRange(from, to string) (model.DateRange, error) {
	r, err := model.ParseDateRange(from, to)
	if err != nil {
		return model.DateRange{}, newError(ErrValidation, "%v", err)
	}
	return r, nil
}

// GeneralReport summarizes purchases and sales of every product within r.
// Remaining on each row is what was purchased minus what was sold in the
// range. Products deleted from the catalog are listed while they have
// activity in the range.
func (s *Service) GeneralReport(ctx context.Context, r model.DateRange) (*model.Report, error) {
	if r.From != "" && r.To != "" && r.From > r.To {
		return nil, newError(ErrValidation, "start date %s is after end date %s", r.From, r.To)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, stock, sales, err := s.history(ctx)
	if err != nil {
		return nil, err
	}

	rows := make(map[int64]*model.ReportRow)
	row := func(id int64) *model.ReportRow {
		if rows[id] == nil {
			rows[id] = &model.ReportRow{ProductID: id}
		}
		return rows[id]
	}

	for _, e := range stock {
		if r.Contains(e.Date) {
			rr := row(e.ProductID)
			rr.PurchasedQty += e.Quantity
			rr.PurchasedAmount += e.Amount()
		}
	}
	for _, e := range sales {
		if r.Contains(e.Date) {
			rr := row(e.ProductID)
			rr.SoldQty += e.Quantity
			rr.SoldAmount += e.TotalAmount
		}
	}

	rep := &model.Report{
		Kind:  model.ReportGeneral,
		Title: "Periodical General Report " + r.String(),
		Range: r,
		Rows:  []model.ReportRow{},
	}

	listed := make(map[int64]bool)
	for _, p := range products {
		rr := row(p.ID)
		rr.Label = p.ProductName
		rep.Rows = append(rep.Rows, *rr)
		listed[p.ID] = true
	}

	var orphans []int64
	for id := range rows {
		if !listed[id] {
			orphans = append(orphans, id)
		}
	}
	slices.Sort(orphans)
	for _, id := range orphans {
		rr := rows[id]
		rr.Label = historicalName(id, products, sales)
		rep.Rows = append(rep.Rows, *rr)
	}

	finishRows(rep)
	return rep, nil
}

// ProductReport summarizes purchases and sales of one product per date
// within r.
func (s *Service) ProductReport(ctx context.Context, productID int64, r model.DateRange) (*model.Report, error) {
	if r.From != "" && r.To != "" && r.From > r.To {
		return nil, newError(ErrValidation, "start date %s is after end date %s", r.From, r.To)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, stock, sales, err := s.history(ctx)
	if err != nil {
		return nil, err
	}

	known := findProduct(products, productID) >= 0
	byDate := make(map[model.Date]*model.ReportRow)
	day := func(d model.Date) *model.ReportRow {
		if byDate[d] == nil {
			byDate[d] = &model.ReportRow{Label: string(d), ProductID: productID}
		}
		return byDate[d]
	}

	for _, e := range stock {
		if e.ProductID != productID {
			continue
		}
		known = true
		if r.Contains(e.Date) {
			rr := day(e.Date)
			rr.PurchasedQty += e.Quantity
			rr.PurchasedAmount += e.Amount()
		}
	}
	for _, e := range sales {
		if e.ProductID != productID {
			continue
		}
		known = true
		if r.Contains(e.Date) {
			rr := day(e.Date)
			rr.SoldQty += e.Quantity
			rr.SoldAmount += e.TotalAmount
		}
	}
	if !known {
		return nil, newError(ErrNotFound, "product %d not found", productID)
	}

	dates := make([]model.Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	name := historicalName(productID, products, sales)
	rep := &model.Report{
		Kind:  model.ReportProduct,
		Title: "Periodical Report for " + name + " " + r.String(),
		Range: r,
		Rows:  make([]model.ReportRow, 0, len(dates)),
	}
	for _, d := range dates {
		rep.Rows = append(rep.Rows, *byDate[d])
	}

	finishRows(rep)
	return rep, nil
}

func (s *Service) history(ctx context.Context) ([]model.Product, []model.StockEntry, []model.SaleEntry, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	stock, err := s.store.StockEntries(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return products, stock, sales, nil
}

// historicalName is the catalog name of a product, or for a deleted
// product the name snapshot of its latest sale.
func historicalName(id int64, products []model.Product, sales []model.SaleEntry) string {
	if i := findProduct(products, id); i >= 0 {
		return products[i].ProductName
	}
	var name string
	var latest int64
	for _, e := range sales {
		if e.ProductID == id && e.ProductName != "" && e.ID >= latest {
			name, latest = e.ProductName, e.ID
		}
	}
	if name != "" {
		return name + " (deleted)"
	}
	return fmt.Sprintf("Deleted product #%d", id)
}

// finishRows fills each row's remaining quantity and the totals. Totals
// cover the amount columns only.
func finishRows(rep *model.Report) {
	rep.Totals = model.ReportTotals{Label: "Total"}
	for i := range rep.Rows {
		rr := &rep.Rows[i]
		rr.Remaining = rr.PurchasedQty - rr.SoldQty
		rep.Totals.PurchasedAmount += rr.PurchasedAmount
		rep.Totals.SoldAmount += rr.SoldAmount
	}
}
