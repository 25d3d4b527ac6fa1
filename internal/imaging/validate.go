package imaging

import "errors"

// MaxUploadBytes caps answer-sheet uploads at 5MB.
const MaxUploadBytes = 5 << 20

// User-facing upload errors. Messages are surfaced verbatim in the UI.
var (
	ErrUnsupportedFormat = errors.New("Format file tidak didukung. Gunakan JPG, PNG, atau GIF.")
	ErrFileTooLarge      = errors.New("Ukuran file terlalu besar. Maksimal 5MB.")
)

var allowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
}

// ValidateUpload checks the declared content type and byte size of an
// uploaded answer-sheet image before any decoding is attempted.
func ValidateUpload(mimeType string, size int64) error {
	if _, ok := allowedMIMETypes[mimeType]; !ok {
		return ErrUnsupportedFormat
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}
