package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// TesseractEngine runs the tesseract binary once per acquired session.
type TesseractEngine struct {
	Lang    string
	Timeout time.Duration
}

func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{Lang: "eng", Timeout: 20 * time.Second}
}

func (e *TesseractEngine) Acquire(_ context.Context) (Session, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, errors.New("tesseract not found in PATH")
	}
	dir, err := os.MkdirTemp("", "sheet-ocr-*")
	if err != nil {
		return nil, err
	}
	return &tesseractSession{lang: e.Lang, timeout: e.Timeout, dir: dir}, nil
}

type tesseractSession struct {
	lang    string
	timeout time.Duration
	dir     string
	closed  bool
}

func (s *tesseractSession) Recognize(ctx context.Context, image []byte, cfg RecognizeConfig) (RecognizeResult, error) {
	if s.closed {
		return RecognizeResult{}, errors.New("session already closed")
	}
	in := filepath.Join(s.dir, "input.img")
	if err := os.WriteFile(in, image, 0o600); err != nil {
		return RecognizeResult{}, err
	}

	args := []string{in, "stdout"}
	if s.lang != "" {
		args = append(args, "-l", s.lang)
	}
	if cfg.PageSegMode > 0 {
		args = append(args, "--psm", strconv.Itoa(cfg.PageSegMode))
	}
	if cfg.Whitelist != "" {
		args = append(args, "-c", "tessedit_char_whitelist="+cfg.Whitelist)
	}
	args = append(args, "tsv")

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "tesseract", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return RecognizeResult{}, fmt.Errorf("tesseract: %s", strings.TrimSpace(stderr.String()))
	}
	text, conf := parseTSV(out.String())
	return RecognizeResult{Text: text, Confidence: conf}, nil
}

func (s *tesseractSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return os.RemoveAll(s.dir)
}

// parseTSV reassembles recognized text from tesseract's TSV output and
// averages the per-word confidence values.
func parseTSV(tsv string) (string, float64) {
	var b strings.Builder
	var confSum float64
	var confN int
	lastLine := ""

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 || strings.TrimSpace(row) == "" {
			continue // header
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 || cols[0] != "5" {
			continue // only word-level rows carry text
		}
		word := cols[11]
		if strings.TrimSpace(word) == "" {
			continue
		}
		lineKey := cols[2] + ":" + cols[3] + ":" + cols[4] // block:par:line
		if b.Len() > 0 {
			if lineKey != lastLine {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		lastLine = lineKey
		b.WriteString(word)

		if conf, err := strconv.ParseFloat(cols[10], 64); err == nil && conf >= 0 {
			confSum += conf
			confN++
		}
	}
	if confN == 0 {
		return b.String(), 0
	}
	return b.String(), confSum / float64(confN)
}
