package storage

import (
	"context"
)

// ObjectStore is the durable home for document payloads. Put returns an
// opaque reference; document rows carry references, never inline payloads.
type ObjectStore interface {
	Put(ctx context.Context, data []byte, contentType string) (ref string, err error)
	Get(ctx context.Context, ref string) ([]byte, error)
}
