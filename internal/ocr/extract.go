package ocr

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/koreksi-id/koreksi/internal/imaging"
)

// msgExtractFailed is the generic retry guidance for unexpected pipeline
// failures (decode errors, engine timeouts, and so on).
const msgExtractFailed = "Gagal mengekstrak jawaban dari gambar. Silakan coba lagi atau gunakan input manual."

// Result is the outcome of one answer-extraction request. Failures are
// always reported here, never propagated as errors to the caller.
type Result struct {
	Answers     string   `json:"answers"`
	Confidence  float64  `json:"confidence"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// extractionOptions is the tuned preprocessing preset for answer sheets:
// mild contrast boost, brightness +10, mid threshold.
var extractionOptions = imaging.Options{Contrast: 1, Brightness: 10, Threshold: 128}

var reNonAnswer = regexp.MustCompile(`[^ABCDEabcde]`)

// Service orchestrates format detection, preprocessing, recognition and
// validation for answer-sheet images.
type Service struct {
	engine Engine
}

func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// ExtractAnswers runs the full pipeline, short-circuiting on the first
// failure. Each stage failure becomes a structured Result; the engine
// session is released on every exit path.
func (s *Service) ExtractAnswers(ctx context.Context, image []byte) Result {
	format := DetectFormat(ctx, s.engine, image)
	if !format.IsValid {
		return Result{Answers: "", Confidence: 0, Error: format.Err}
	}

	processed, err := imaging.Preprocess(image, extractionOptions)
	if err != nil {
		log.Printf("ocr: preprocess failed: %v", err)
		return Result{Error: msgExtractFailed}
	}

	sess, err := s.engine.Acquire(ctx)
	if err != nil {
		log.Printf("ocr: engine acquire failed: %v", err)
		return Result{Error: msgExtractFailed}
	}
	defer sess.Close()

	rec, err := sess.Recognize(ctx, processed, RecognizeConfig{
		Whitelist:   "ABCDE",
		PageSegMode: 6,
	})
	if err != nil {
		log.Printf("ocr: recognize failed: %v", err)
		return Result{Error: msgExtractFailed}
	}

	answers := strings.ToUpper(reNonAnswer.ReplaceAllString(rec.Text, ""))

	if v := ValidateAnswers(answers); !v.IsValid {
		return Result{Answers: "", Confidence: 0, Error: v.Error, Suggestions: v.Suggestions}
	}
	return Result{Answers: answers, Confidence: rec.Confidence}
}

// FormatAnswersForDisplay space-joins the letters for readability ("ABC" -> "A B C").
func FormatAnswersForDisplay(answers string) string {
	return strings.Join(strings.Split(answers, ""), " ")
}

// ConfidenceLevel maps an engine confidence percentage to a display label.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 90:
		return "Sangat Baik"
	case confidence >= 80:
		return "Baik"
	case confidence >= 70:
		return "Cukup"
	default:
		return "Kurang"
	}
}
