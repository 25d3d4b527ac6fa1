package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/koreksi-id/koreksi/internal/export"
	"github.com/koreksi-id/koreksi/internal/store"
)

// RowSink appends spreadsheet rows somewhere; in production this is the
// Google Sheets exporter.
type RowSink interface {
	Append(ctx context.Context, rows [][]string) error
}

type exportRequest struct {
	Class string `json:"class,omitempty"` // "" or "all" exports everything
}

// ExportResultsHandler pushes graded results to the configured sheet.
//
// POST /export/sheets
func ExportResultsHandler(st store.Store, sink RowSink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sink == nil {
			http.Error(w, "ekspor Google Sheets tidak dikonfigurasi", http.StatusServiceUnavailable)
			return
		}
		var req exportRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req) // empty body means export all
		}
		results, err := st.ListResults(r.Context(), req.Class)
		if err != nil {
			http.Error(w, "list results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if len(results) == 0 {
			http.Error(w, "Tidak ada data yang dapat diekspor", http.StatusBadRequest)
			return
		}
		rows := export.BuildRows(results, req.Class)
		if err := sink.Append(r.Context(), rows); err != nil {
			http.Error(w, "Gagal mengekspor data ke Google Sheet: "+err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Data berhasil diekspor ke Google Sheet.",
			"rows":    len(rows) - 1,
		})
	}
}
