package blob

import (
	"context"
	"io"
)

// Store persists uploaded binary blobs and returns a public URL for each.
// Filenames are suffixed with a random component so repeated uploads of the
// same file never collide.
type Store interface {
	Put(ctx context.Context, filename string, contentType string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}
