package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/koreksi-id/koreksi/internal/imaging"
	"github.com/koreksi-id/koreksi/internal/ocr"
	"github.com/koreksi-id/koreksi/internal/storage"
)

type extractResponse struct {
	ocr.Result
	Display         string `json:"display,omitempty"`
	ConfidenceLevel string `json:"confidence_level,omitempty"`
}

// ExtractAnswersHandler accepts a multipart answer-sheet photo under the
// "image" field and returns the extracted answer string. Extraction
// failures come back as structured results with HTTP 200; only malformed
// requests get error statuses.
//
// POST /sheets/extract
func ExtractAnswersHandler(svc *ocr.Service, archive storage.Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "image field required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")
		if err := imaging.ValidateUpload(mimeType, header.Size); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
		if err != nil {
			http.Error(w, "read upload: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if int64(len(data)) > imaging.MaxUploadBytes {
			http.Error(w, imaging.ErrFileTooLarge.Error(), http.StatusBadRequest)
			return
		}

		if archive != nil {
			if _, err := archive.Save(header.Filename, bytes.NewReader(data)); err != nil {
				log.Printf("api: archive upload: %v", err) // non-fatal
			}
		}

		res := svc.ExtractAnswers(r.Context(), data)
		resp := extractResponse{Result: res}
		if res.Error == "" {
			resp.Display = ocr.FormatAnswersForDisplay(res.Answers)
			resp.ConfidenceLevel = ocr.ConfidenceLevel(res.Confidence)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
