package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/koreksi-id/koreksi/internal/essay"
	"github.com/koreksi-id/koreksi/internal/grading"
)

// CreateGradeHandler grades one student from an answer key, typed or
// OCR-extracted answers, and an optional essay.
//
// POST /grades
func CreateGradeHandler(svc *grading.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req grading.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.StudentID == "" || req.Class == "" {
			http.Error(w, "Mohon isi nama, nomor absen, dan kelas siswa", http.StatusBadRequest)
			return
		}
		res, err := svc.Grade(r.Context(), req)
		if err != nil {
			if errors.Is(err, grading.ErrNoComponents) {
				http.Error(w, "Mohon isi kunci jawaban PG atau pertanyaan esai", http.StatusBadRequest)
				return
			}
			http.Error(w, "Gagal memproses data siswa", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

type analyzeEssayResponse struct {
	Analysis      essay.Result `json:"analysis"`
	WordCount     int          `json:"word_count"`
	Readability   float64      `json:"readability"`
	GrammarIssues []string     `json:"grammar_issues,omitempty"`
}

// AnalyzeEssayHandler scores a single essay without persisting anything,
// adding word-count, readability and grammar notes for the review screen.
//
// POST /essays/analyze
func AnalyzeEssayHandler(analyzer grading.EssayAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req essay.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		res, err := analyzer.Analyze(r.Context(), req)
		if err != nil {
			http.Error(w, "Gagal melakukan analisis esai dengan AI", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, analyzeEssayResponse{
			Analysis:      res,
			WordCount:     essay.CountWords(req.Answer),
			Readability:   essay.ReadabilityScore(req.Answer),
			GrammarIssues: essay.CheckGrammar(req.Answer),
		})
	}
}
