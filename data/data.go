package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/docubase/docursor/data/config"
	"github.com/docubase/docursor/paging"
)

// ErrNotFound is returned by point lookups when no document matches.
var ErrNotFound = errors.New("data: document not found")

// Document is one stored record: an ordering key (the first component of
// the store's values index) plus the raw document body.
type Document struct {
	Key  int64           `json:"key"`
	Data json.RawMessage `json:"data"`
}

// Store is the document store contract the toolkit programs against.
type Store interface {
	// EnsureSchema creates the collection and indexes the other
	// operations rely on. It is idempotent.
	EnsureSchema(ctx context.Context) error

	// InsertMany writes a batch of documents.
	InsertMany(ctx context.Context, docs []Document) error

	// GetByKey returns the document with the given key, or ErrNotFound.
	GetByKey(ctx context.Context, key int64) (*Document, error)

	// GetByKeys returns the documents matching any of the given keys, in
	// key order. Missing keys are skipped, not an error.
	GetByKeys(ctx context.Context, keys []int64) ([]Document, error)

	// FetchPage serves one page of the ordered index. It satisfies
	// paging.FetchFunc.
	FetchPage(ctx context.Context, req paging.Request) (*paging.RawPage, error)

	// Close releases the store's resources.
	Close(ctx context.Context) error
}

// Driver creates stores from configuration.
type Driver interface {
	Name() string
	Open(ctx context.Context, cfg *config.Config) (Store, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// RegisterDriver registers a store driver. Drivers call this from their
// init functions.
func RegisterDriver(d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[d.Name()] = d
}

// GetDriver returns the registered driver with the given name.
func GetDriver(name string) (Driver, error) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	d, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("data: unknown driver %q", name)
	}
	return d, nil
}

// Open creates a store using the driver named in the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, errors.New("data: configuration is required")
	}
	d, err := GetDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return d.Open(ctx, cfg)
}
