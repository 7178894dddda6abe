package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes blobs to a directory on disk and serves them under a
// public URL prefix, typically /uploads/.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates a local blob store rooted at dir. The directory is
// created if it does not exist.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	return &LocalStore{
		dir:       dir,
		urlPrefix: urlPrefix,
	}, nil
}

// Put stores the blob under a randomized filename derived from the original
// and returns its public URL
func (s *LocalStore) Put(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := randomizedName(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.urlPrefix + name, nil
}

// Delete removes the blob behind a URL previously returned by Put. Unknown
// URLs are ignored.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !strings.HasPrefix(url, s.urlPrefix) {
		return nil
	}

	name := strings.TrimPrefix(url, s.urlPrefix)
	// Reject anything that could escape the blob directory
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

// randomizedName keeps the base name and extension but inserts a random
// suffix so uploads never overwrite each other
func randomizedName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if stem == "" || stem == "." {
		stem = "upload"
	}

	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%s%s", sanitize(stem), suffix, ext)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
