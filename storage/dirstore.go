package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

/*
Provider backed by a local directory. Document ids are paths relative to the
root.
*/

////////////////////////////////////////////////////////////////////////////////

type dirstore struct {
	root string
}

func NewDirStore(root string) Provider {
	return &dirstore{root: root}
}

// Put stores a document under the root directory.
func (d *dirstore) Put(_ context.Context, id string, data []byte) error {
	path := filepath.Join(d.root, id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Get retrieves a document from the root directory.
func (d *dirstore) Get(_ context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.root, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func (d *dirstore) String() string {
	return fmt.Sprintf("dir(%s)", d.root)
}
