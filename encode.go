package ledger

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// loadCollection decodes the blob stored under key into a slice of T.
// Missing or unparseable data yields an empty collection, never an error:
// the substrate carries no schema version and no migration logic, so a
// blob this package cannot read is treated as absent.
func loadCollection[T any](blobs BlobStore, key string) []T {
	blob, err := blobs.Load(key)
	if err != nil {
		log.Printf("ledger: could not load %q, starting empty: %v", key, err)
		return nil
	}
	if len(blob) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("ledger: could not decode %q, starting empty: %v", key, err)
		return nil
	}
	return items
}

// saveCollection serializes the whole collection as a JSON array and
// overwrites its blob. Collections persist whole, not incrementally.
func saveCollection[T any](blobs BlobStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	return blobs.Save(key, blob)
}
