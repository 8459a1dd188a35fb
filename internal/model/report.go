package model

// ReportRow is one line of a general or per-product report. Label is the
// product name (general report) or the date (per-product report).
// Remaining is PurchasedQty minus SoldQty of the row.
type ReportRow struct {
	Label           string  `json:"label"`
	ProductID       int64   `json:"productId,omitempty"`
	PurchasedQty    int     `json:"purchasedQty"`
	PurchasedAmount float64 `json:"purchasedAmount"`
	SoldQty         int     `json:"soldQty"`
	SoldAmount      float64 `json:"soldAmount"`
	Remaining       int     `json:"remaining"`
}

// Report kinds.
const (
	ReportGeneral = "general"
	ReportProduct = "product"
)

// ReportTotals sums the amount columns of a report.
type ReportTotals struct {
	Label           string  `json:"label"`
	PurchasedAmount float64 `json:"purchasedAmount"`
	SoldAmount      float64 `json:"soldAmount"`
}

// Report is a periodical summary with a totals row.
type Report struct {
	Kind   string       `json:"kind"`
	Title  string       `json:"title"`
	Range  DateRange    `json:"range"`
	Rows   []ReportRow  `json:"rows"`
	Totals ReportTotals `json:"totals"`
}
