package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BlobStore is the persistence substrate: a flat keyed blob space with
// whole-value load/save semantics. The store overwrites a whole collection
// blob on every mutation and never reads one back after startup.
type BlobStore interface {
	// Load returns the blob stored under key, or nil when the key is absent.
	Load(key string) ([]byte, error)
	// Save overwrites the blob stored under key.
	Save(key string, blob []byte) error
}

// DirStore is a BlobStore keeping each key as a JSON file in a directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir. The directory is created
// lazily on the first Save.
func NewDirStore(dir string) DirStore {
	return DirStore{dir: dir}
}

func (d DirStore) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

// Load reads the blob file for key. A missing file is not an error: the
// key simply holds nothing yet.
func (d DirStore) Load(key string) ([]byte, error) {
	blob, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read blob %q: %w", key, err)
	}
	return blob, nil
}

// Save overwrites the blob file for key, creating the directory if needed.
func (d DirStore) Save(key string, blob []byte) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("could not create blob directory %q: %w", d.dir, err)
	}
	if err := os.WriteFile(d.path(key), blob, 0644); err != nil {
		return fmt.Errorf("could not write blob %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory BlobStore for tests and throwaway sessions.
type MemStore map[string][]byte

func (m MemStore) Load(key string) ([]byte, error) { return m[key], nil }

func (m MemStore) Save(key string, blob []byte) error {
	m[key] = blob
	return nil
}

var _ BlobStore = DirStore{}
var _ BlobStore = MemStore{}
