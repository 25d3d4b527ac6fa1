package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Archive keeps optional copies of uploaded answer-sheet images. The core
// pipeline treats images as transient; archiving is for teacher audits.
type Archive interface {
	Save(name string, r io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
}

type FSArchive struct{ base string }

func NewFSArchive(base string) (*FSArchive, error) {
	if base == "" {
		base = "./data/uploads"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSArchive{base: base}, nil
}

// Save stores the stream under a timestamped key and returns the key.
func (a *FSArchive) Save(name string, r io.Reader) (string, error) {
	if name == "" {
		return "", errors.New("empty name")
	}
	key := time.Now().UTC().Format("20060102T150405.000000000") + "-" + filepath.Base(name)
	dst := filepath.Join(a.base, key)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (a *FSArchive) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(a.base, filepath.Clean(key)))
}
