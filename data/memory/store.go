// Package memory provides an in-memory document store driver.
//
// The store keeps documents ordered by key and serves cursor-chained pages
// with the same semantics as the MongoDB driver, which makes it the
// reference store for unit tests and offline runs of the examples. It
// registers itself when imported:
//
//	import _ "github.com/docubase/docursor/data/memory"
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/docubase/docursor/data"
	"github.com/docubase/docursor/data/config"
	"github.com/docubase/docursor/paging"
)

type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "memory"
}

// Open creates an empty in-memory store. The configuration carries nothing
// the store needs.
func (d *driver) Open(_ context.Context, _ *config.Config) (data.Store, error) {
	return New(), nil
}

func init() {
	data.RegisterDriver(&driver{})
}

// Store is an in-memory document store ordered by key. It is safe for
// concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs []data.Document
}

// New creates a store seeded with the given documents.
func New(docs ...data.Document) *Store {
	s := &Store{}
	if len(docs) > 0 {
		s.docs = append(s.docs, docs...)
		sort.Slice(s.docs, func(i, j int) bool { return s.docs[i].Key < s.docs[j].Key })
	}
	return s
}

// EnsureSchema is a no-op: the in-memory index always exists.
func (s *Store) EnsureSchema(_ context.Context) error {
	return nil
}

// InsertMany writes a batch of documents, enforcing key uniqueness the way
// the unique index of the MongoDB driver would.
func (s *Store) InsertMany(_ context.Context, docs []data.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(docs))
	for _, d := range docs {
		if _, dup := seen[d.Key]; dup {
			return fmt.Errorf("memory: duplicate key %d in batch", d.Key)
		}
		seen[d.Key] = struct{}{}
		if _, ok := s.lookup(d.Key); ok {
			return fmt.Errorf("memory: key %d already exists", d.Key)
		}
	}

	s.docs = append(s.docs, docs...)
	sort.Slice(s.docs, func(i, j int) bool { return s.docs[i].Key < s.docs[j].Key })
	return nil
}

// GetByKey returns the document with the given key.
func (s *Store) GetByKey(_ context.Context, key int64) (*data.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.lookup(key)
	if !ok {
		return nil, data.ErrNotFound
	}
	doc := s.docs[i]
	return &doc, nil
}

// GetByKeys returns the documents matching any of the given keys, in key
// order. Missing keys are skipped.
func (s *Store) GetByKeys(_ context.Context, keys []int64) ([]data.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := append([]int64(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var docs []data.Document
	for _, key := range sorted {
		if i, ok := s.lookup(key); ok {
			docs = append(docs, s.docs[i])
		}
	}
	return docs, nil
}

// FetchPage serves one page of the key-ordered index. After resumes past
// the cursor position, Before serves the page preceding it, and Bound is a
// standing inclusive upper limit on served keys. Continuation cursors are
// present exactly when more data exists in their direction.
func (s *Store) FetchPage(ctx context.Context, req paging.Request) (*paging.RawPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.After != nil && req.Before != nil {
		return nil, errors.New("memory: after and before cursors are mutually exclusive")
	}
	size := req.Size
	if size <= 0 {
		size = paging.DefaultPageSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// end is one past the last in-bound entry.
	end := len(s.docs)
	if req.Bound != nil {
		bound, err := paging.DecodeCursor(*req.Bound)
		if err != nil {
			return nil, err
		}
		end = sort.Search(len(s.docs), func(i int) bool { return s.docs[i].Key > bound })
	}

	if req.Before != nil || req.Reverse {
		return s.pageBefore(req.Before, end, size)
	}
	return s.pageAfter(req.After, end, size)
}

// pageAfter serves the page following the cursor, in ascending order.
func (s *Store) pageAfter(after *paging.Cursor, end, size int) (*paging.RawPage, error) {
	start := 0
	if after != nil {
		key, err := paging.DecodeCursor(*after)
		if err != nil {
			return nil, err
		}
		start = sort.Search(len(s.docs), func(i int) bool { return s.docs[i].Key > key })
	}
	if start > end {
		start = end
	}
	stop := start + size
	if stop > end {
		stop = end
	}

	page := s.page(start, stop)
	if stop < end {
		page.After = paging.CursorAt(paging.EncodeCursor(s.docs[stop-1].Key))
	}
	if start > 0 && stop > start {
		page.Before = paging.CursorAt(paging.EncodeCursor(s.docs[start].Key))
	}
	return page, nil
}

// pageBefore serves the page preceding the cursor position, entries in
// store (ascending) order. A nil cursor means the end of the bounded range.
func (s *Store) pageBefore(before *paging.Cursor, end, size int) (*paging.RawPage, error) {
	stop := end
	if before != nil {
		key, err := paging.DecodeCursor(*before)
		if err != nil {
			return nil, err
		}
		stop = sort.Search(len(s.docs), func(i int) bool { return s.docs[i].Key >= key })
		if stop > end {
			stop = end
		}
	}
	start := stop - size
	if start < 0 {
		start = 0
	}

	page := s.page(start, stop)
	if start > 0 && stop > start {
		page.Before = paging.CursorAt(paging.EncodeCursor(s.docs[start].Key))
	}
	if stop < end && stop > 0 {
		page.After = paging.CursorAt(paging.EncodeCursor(s.docs[stop-1].Key))
	}
	return page, nil
}

func (s *Store) page(start, stop int) *paging.RawPage {
	page := &paging.RawPage{}
	for _, d := range s.docs[start:stop] {
		page.Entries = append(page.Entries, paging.RawEntry{Key: d.Key, Data: d.Data})
	}
	return page
}

// Close releases nothing; the store lives in process memory.
func (s *Store) Close(_ context.Context) error {
	return nil
}

// lookup returns the index of key, assuming s.mu is held.
func (s *Store) lookup(key int64) (int, bool) {
	i := sort.Search(len(s.docs), func(i int) bool { return s.docs[i].Key >= key })
	if i < len(s.docs) && s.docs[i].Key == key {
		return i, true
	}
	return -1, false
}
