package paging

import "context"

const (
	// DefaultPageSize is used when no page size option is given.
	DefaultPageSize = 256

	// MaxPageSize caps the per-request page size. Stores commonly reject
	// larger limits, so requests are clamped rather than passed through.
	MaxPageSize = 1024
)

// Direction selects which way a traversal walks the index.
type Direction int

const (
	// Forward walks the index in ascending order, following after-cursors.
	Forward Direction = iota
	// Backward walks the index in descending order, following before-cursors.
	Backward
)

// RawEntry is one index entry as returned by the store, before
// materialization. Key is the entry's ordering key (the first component of
// the index value); Data is the raw document body.
type RawEntry struct {
	Key  int64
	Data []byte
}

// RawPage is one response unit from the store: the entries of the page in
// store order, plus optional continuation cursors. After present means more
// data may exist in the forward direction, Before likewise for backward.
type RawPage struct {
	Entries []RawEntry
	Before  *Cursor
	After   *Cursor
}

// Request describes one page fetch. At most one of After and Before is set:
// After asks for the page following the cursor (forward traversal), Before
// for the page preceding it (backward traversal); neither means the first
// page in the traversal's direction. Bound is a standing upper limit on the
// served range, repeated on every request so the store never serves entries
// past it.
// Reverse tells the store which end of the result set a cursorless request
// starts from: absence of a cursor means "start of result set" going
// forward and "end of result set" going backward.
type Request struct {
	After   *Cursor
	Before  *Cursor
	Bound   *Cursor
	Size    int
	Reverse bool
}

// FetchFunc fetches one page from the store. It is the iterator's only
// external dependency: given a request carrying a previously returned
// cursor it returns the adjacent page, and given no cursor it returns the
// first page of the (optionally bounded) result set. Retry policy, if any,
// belongs inside the FetchFunc; the iterator never retries.
type FetchFunc func(ctx context.Context, req Request) (*RawPage, error)

// MaterializeFunc converts one raw entry into a domain record. A failure
// aborts the whole page; see MaterializeError.
type MaterializeFunc[T any] func(entry RawEntry) (T, error)
