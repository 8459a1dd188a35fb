package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/juicedepot/internal/depot"
	"github.com/erazemk/juicedepot/internal/model"
	"github.com/erazemk/juicedepot/internal/report"
)

// ReportsHandler handles report endpoints. The format query parameter
// selects json (default) or one of the printable formats.
type ReportsHandler struct {
	Depot    *depot.Service
	Renderer *report.Renderer
}

// General handles GET /api/reports/general.
func (h *ReportsHandler) General(w http.ResponseWriter, r *http.Request) {
	rng, err := depot.ParseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		serviceError(w, err, "invalid date range")
		return
	}

	rep, err := h.Depot.GeneralReport(r.Context(), rng)
	if err != nil {
		serviceError(w, err, "failed to build report")
		return
	}
	h.write(w, r, rep)
}

// Product handles GET /api/reports/products/{id}.
func (h *ReportsHandler) Product(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	rng, err := depot.ParseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		serviceError(w, err, "invalid date range")
		return
	}

	rep, err := h.Depot.ProductReport(r.Context(), id, rng)
	if err != nil {
		serviceError(w, err, "failed to build report")
		return
	}
	h.write(w, r, rep)
}

func (h *ReportsHandler) write(w http.ResponseWriter, r *http.Request, rep *model.Report) {
	name := r.URL.Query().Get("format")
	if name == "" || name == "json" {
		jsonResponse(w, http.StatusOK, rep)
		return
	}

	format, err := report.ParseFormat(name)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if err := h.Renderer.Render(w, rep, format); err != nil {
		slog.Error("failed to render report", "error", err)
	}
}
