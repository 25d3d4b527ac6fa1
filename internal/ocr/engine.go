package ocr

import "context"

// RecognizeConfig tunes a single recognition pass.
type RecognizeConfig struct {
	// Whitelist restricts the output alphabet; empty means unrestricted.
	Whitelist string
	// PageSegMode selects the engine's segmentation mode; 0 keeps the
	// engine default. Mode 6 assumes a single uniform block of text.
	PageSegMode int
}

// RecognizeResult is the raw output of one recognition pass.
type RecognizeResult struct {
	Text       string
	Confidence float64 // 0..100
}

// Session is a single-use recognition session. Callers must Close the
// session on every exit path; a session is never reused across images.
type Session interface {
	Recognize(ctx context.Context, image []byte, cfg RecognizeConfig) (RecognizeResult, error)
	Close() error
}

// Engine produces recognition sessions. The engine is treated as untrusted
// latency-wise; implementations should impose their own timeouts.
type Engine interface {
	Acquire(ctx context.Context) (Session, error)
}
