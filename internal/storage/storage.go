package storage

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock.go
type Client interface {
	// Upload stores size bytes read from r under path, overwriting any existing object.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
}
