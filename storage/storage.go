package storage

import (
	"context"
	"errors"
)

/*
Providers for schema registry documents. The CLI loads registries by id from
a provider, so the same tooling works against a local schema directory and an
object store shared by a fleet of toolchains.
*/

////////////////////////////////////////////////////////////////////////////////

var ErrDocumentNotFound = errors.New("document not found")

type Provider interface {
	// Put stores a registry document under the given id.
	Put(ctx context.Context, id string, data []byte) error

	// Get retrieves the registry document with the given id.
	Get(ctx context.Context, id string) ([]byte, error)
}
