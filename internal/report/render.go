// Package report renders depot reports as printable tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erazemk/juicedepot/internal/model"
)

// Format is an output format for rendered reports.
type Format string

// Formats.
const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name. An empty name means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatCSV, FormatHTML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// ContentType is the MIME type of the rendered format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Renderer formats reports with locale-aware number formatting.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer returns a renderer for the given locale.
func NewRenderer(locale language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(locale)}
}

// Render writes rep to w in the given format.
func (r *Renderer) Render(w io.Writer, rep *model.Report, format Format) error {
	t := table.NewWriter()
	t.SetTitle(rep.Title)
	t.SetStyle(table.StyleLight)

	first := "Product"
	if rep.Kind == model.ReportProduct {
		first = "Date"
	}
	t.AppendHeader(table.Row{first, "Purchased Qty", "Purchased Amount", "Sold Qty", "Sold Amount", "Remaining"})

	amount := r.amount
	qty := r.quantity
	if format == FormatCSV {
		amount = func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
		qty = strconv.Itoa
	}

	for _, row := range rep.Rows {
		t.AppendRow(table.Row{row.Label, qty(row.PurchasedQty), amount(row.PurchasedAmount),
			qty(row.SoldQty), amount(row.SoldAmount), qty(row.Remaining)})
	}
	tot := rep.Totals
	t.AppendFooter(table.Row{tot.Label, "", amount(tot.PurchasedAmount), "", amount(tot.SoldAmount), ""})

	var cols []table.ColumnConfig
	for n := 2; n <= 6; n++ {
		cols = append(cols, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(cols)

	var out string
	switch format {
	case FormatCSV:
		out = t.RenderCSV()
	case FormatHTML:
		out = t.RenderHTML()
	case FormatMarkdown:
		out = t.RenderMarkdown()
	default:
		out = t.Render()
	}

	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *Renderer) amount(v float64) string {
	return r.printer.Sprintf("%.2f", v)
}

func (r *Renderer) quantity(v int) string {
	return r.printer.Sprintf("%d", v)
}
