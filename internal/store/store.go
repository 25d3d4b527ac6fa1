package store

import (
	"context"
	"errors"

	"github.com/koreksi-id/koreksi/internal/grading"
)

// ErrNotFound is returned when a grading result does not exist.
var ErrNotFound = errors.New("grading result not found")

// Store persists and lists finished grading results. Implementations must
// satisfy grading.ResultStore.
type Store interface {
	SaveResult(ctx context.Context, r grading.Result) error
	GetResult(ctx context.Context, id string) (grading.Result, error)
	// ListResults returns results newest-first; class "" or "all" lists
	// every class.
	ListResults(ctx context.Context, class string) ([]grading.Result, error)
}

func classMatches(filter, class string) bool {
	return filter == "" || filter == "all" || filter == class
}
