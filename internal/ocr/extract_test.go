package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// fakeEngine hands out scripted sessions in order and records them so tests
// can assert every session was released.
type fakeEngine struct {
	sessions   []*fakeSession
	next       int
	acquireErr error
}

func (e *fakeEngine) Acquire(context.Context) (Session, error) {
	if e.acquireErr != nil {
		return nil, e.acquireErr
	}
	if e.next >= len(e.sessions) {
		return nil, errors.New("no more scripted sessions")
	}
	s := e.sessions[e.next]
	e.next++
	return s, nil
}

type fakeSession struct {
	result RecognizeResult
	err    error
	cfg    RecognizeConfig
	closed bool
}

func (s *fakeSession) Recognize(_ context.Context, _ []byte, cfg RecognizeConfig) (RecognizeResult, error) {
	s.cfg = cfg
	if s.err != nil {
		return RecognizeResult{}, s.err
	}
	return s.result, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func sheetImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 30), uint8(y * 30), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

const sheetText = "1. A  2. B  3. C\n4. D  5. E"

func TestExtractAnswersHappyPath(t *testing.T) {
	detect := &fakeSession{result: RecognizeResult{Text: sheetText, Confidence: 80}}
	recognize := &fakeSession{result: RecognizeResult{Text: "a b!c\nD2E", Confidence: 91.5}}
	eng := &fakeEngine{sessions: []*fakeSession{detect, recognize}}

	got := NewService(eng).ExtractAnswers(context.Background(), sheetImage(t))
	if got.Error != "" {
		t.Fatalf("unexpected error: %q", got.Error)
	}
	if got.Answers != "ABCDE" {
		t.Fatalf("Answers = %q, want ABCDE", got.Answers)
	}
	if got.Confidence != 91.5 {
		t.Fatalf("Confidence = %v, want 91.5", got.Confidence)
	}
	if recognize.cfg.Whitelist != "ABCDE" || recognize.cfg.PageSegMode != 6 {
		t.Fatalf("recognition config not applied: %+v", recognize.cfg)
	}
	if !detect.closed || !recognize.closed {
		t.Fatalf("sessions must be released (detect=%v recognize=%v)", detect.closed, recognize.closed)
	}
}

func TestExtractAnswersFormatGate(t *testing.T) {
	detect := &fakeSession{result: RecognizeResult{Text: "catatan rapat minggu lalu", Confidence: 70}}
	eng := &fakeEngine{sessions: []*fakeSession{detect}}

	got := NewService(eng).ExtractAnswers(context.Background(), sheetImage(t))
	if got.Answers != "" || got.Confidence != 0 {
		t.Fatalf("failed gate must return empty result, got %+v", got)
	}
	if got.Error != "Format lembar jawaban tidak dikenali. Pastikan gambar jelas dan format sesuai standar." {
		t.Fatalf("unexpected gate message: %q", got.Error)
	}
	if !detect.closed {
		t.Fatalf("detection session leaked")
	}
}

func TestExtractAnswersEngineFailureIsStructured(t *testing.T) {
	detect := &fakeSession{result: RecognizeResult{Text: sheetText}}
	recognize := &fakeSession{err: errors.New("engine timeout")}
	eng := &fakeEngine{sessions: []*fakeSession{detect, recognize}}

	got := NewService(eng).ExtractAnswers(context.Background(), sheetImage(t))
	if got.Error != msgExtractFailed {
		t.Fatalf("Error = %q, want generic retry guidance", got.Error)
	}
	if !recognize.closed {
		t.Fatalf("session must be released after recognition failure")
	}
}

func TestExtractAnswersValidationFailure(t *testing.T) {
	detect := &fakeSession{result: RecognizeResult{Text: sheetText}}
	recognize := &fakeSession{result: RecognizeResult{Text: "AB", Confidence: 95}}
	eng := &fakeEngine{sessions: []*fakeSession{detect, recognize}}

	got := NewService(eng).ExtractAnswers(context.Background(), sheetImage(t))
	if got.Error != "Jumlah jawaban terlalu sedikit" {
		t.Fatalf("Error = %q", got.Error)
	}
	if got.Answers != "" || got.Confidence != 0 {
		t.Fatalf("invalid extraction must clear answers and confidence: %+v", got)
	}
}

func TestExtractAnswersBadImage(t *testing.T) {
	detect := &fakeSession{result: RecognizeResult{Text: sheetText}}
	eng := &fakeEngine{sessions: []*fakeSession{detect}}

	got := NewService(eng).ExtractAnswers(context.Background(), []byte("not an image"))
	if got.Error != msgExtractFailed {
		t.Fatalf("Error = %q, want generic retry guidance", got.Error)
	}
}

func TestDetectFormatSignals(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		valid bool
	}{
		{"numbering and options", "1. a 2. b 3. c", true},
		{"numbering and bubbles", "1. o 2. ● 3. ○", true},
		{"numbering only", "1. 2. 3.", false},
		{"options only", "a b c d e ", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := &fakeSession{result: RecognizeResult{Text: tc.text}}
			eng := &fakeEngine{sessions: []*fakeSession{sess}}
			got := DetectFormat(context.Background(), eng, nil)
			if got.IsValid != tc.valid {
				t.Fatalf("IsValid = %v, want %v", got.IsValid, tc.valid)
			}
			if tc.valid && got.Format != "standard" {
				t.Fatalf("Format = %q, want standard", got.Format)
			}
			if !sess.closed {
				t.Fatalf("detection session leaked")
			}
		})
	}
}

func TestDetectFormatEngineUnavailable(t *testing.T) {
	eng := &fakeEngine{acquireErr: errors.New("tesseract not found in PATH")}
	got := DetectFormat(context.Background(), eng, nil)
	if got.IsValid {
		t.Fatalf("detection must fail when engine is unavailable")
	}
	if got.Err != "Gagal menganalisis format lembar jawaban" {
		t.Fatalf("Err = %q", got.Err)
	}
}

func TestFormatAnswersForDisplay(t *testing.T) {
	if got := FormatAnswersForDisplay("ABCDE"); got != "A B C D E" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAnswersForDisplay(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestConfidenceLevel(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{95, "Sangat Baik"}, {90, "Sangat Baik"},
		{85, "Baik"}, {80, "Baik"},
		{75, "Cukup"}, {70, "Cukup"},
		{69.9, "Kurang"}, {0, "Kurang"},
	}
	for _, tc := range cases {
		if got := ConfidenceLevel(tc.in); got != tc.want {
			t.Fatalf("ConfidenceLevel(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"1\t1\t0\t0\t0\t0\t0\t0\t100\t100\t-1\t",
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tA",
		"5\t1\t1\t1\t1\t2\t12\t0\t10\t10\t80\tB",
		"5\t1\t1\t1\t2\t1\t0\t12\t10\t10\t70\tC",
	}, "\n")
	text, conf := parseTSV(tsv)
	if text != "A B\nC" {
		t.Fatalf("text = %q", text)
	}
	if conf != 80 {
		t.Fatalf("conf = %v, want 80", conf)
	}
}
