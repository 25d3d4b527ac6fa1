package ocr

import (
	"context"
	"regexp"
	"strings"
)

// User-facing format-detection messages (Indonesian, verbatim).
const (
	msgFormatNotRecognized = "Format lembar jawaban tidak dikenali. Pastikan gambar jelas dan format sesuai standar."
	msgFormatDetectFailed  = "Gagal menganalisis format lembar jawaban"
)

// FormatResult reports whether an image looks like an answer sheet.
type FormatResult struct {
	IsValid bool   `json:"is_valid"`
	Format  string `json:"format,omitempty"` // "standard" when recognized
	Err     string `json:"error,omitempty"`
}

var (
	reNumbering = regexp.MustCompile(`\d+\.`)
	reOptions   = regexp.MustCompile(`[a-e][\s.]`)
	reBubbles   = regexp.MustCompile(`[o●○]`)
)

// DetectFormat runs a quick recognition pass over the raw (not preprocessed)
// image and checks for answer-sheet markers: item numbering, option letters
// and bubble glyphs. It is a heuristic gate, not a layout parser; unusual
// sheets may be rejected.
func DetectFormat(ctx context.Context, engine Engine, image []byte) FormatResult {
	sess, err := engine.Acquire(ctx)
	if err != nil {
		return FormatResult{IsValid: false, Err: msgFormatDetectFailed}
	}
	defer sess.Close()

	res, err := sess.Recognize(ctx, image, RecognizeConfig{})
	if err != nil {
		return FormatResult{IsValid: false, Err: msgFormatDetectFailed}
	}

	text := strings.ToLower(res.Text)
	hasNumbering := reNumbering.MatchString(text)
	hasOptions := reOptions.MatchString(text)
	hasBubbles := reBubbles.MatchString(text)

	if hasNumbering && (hasOptions || hasBubbles) {
		return FormatResult{IsValid: true, Format: "standard"}
	}
	return FormatResult{IsValid: false, Err: msgFormatNotRecognized}
}
