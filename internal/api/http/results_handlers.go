package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/koreksi-id/koreksi/internal/store"
)

// ListResultsHandler lists grading results, optionally filtered by class.
//
// GET /results?class=XI+IPA+1
func ListResultsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		class := r.URL.Query().Get("class")
		results, err := st.ListResults(r.Context(), class)
		if err != nil {
			http.Error(w, "list results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

// GetResultHandler returns one grading result with its full detail.
//
// GET /results/{resultID}
func GetResultHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "resultID"))
		if id == "" {
			http.Error(w, "resultID required", http.StatusBadRequest)
			return
		}
		res, err := st.GetResult(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "result not found", http.StatusNotFound)
				return
			}
			http.Error(w, "get result: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
