package paging

import (
	"errors"
	"fmt"
)

// ErrDone is returned by Next when the traversal is exhausted. Once
// returned it is returned again on every subsequent call without issuing
// further fetches.
var ErrDone = errors.New("paging: no more items")

// ErrInvalidCursor is returned by DecodeCursor for tokens that were not
// minted by EncodeCursor.
var ErrInvalidCursor = errors.New("paging: invalid cursor")

// FetchError wraps a failure of the supplied FetchFunc. The iterator does
// not retry: the error is surfaced on the Next call that triggered the
// fetch, and the iterator stays failed, returning the same error from every
// later call.
type FetchError struct {
	// Transient reports whether the underlying failure is worth retrying
	// from the caller's point of view (network or timeout, as opposed to a
	// request the store rejected). The classification is made by the
	// FetchFunc and carried through unchanged.
	Transient bool
	Err       error
}

func (e *FetchError) Error() string {
	if e.Transient {
		return fmt.Sprintf("paging: transient fetch failure: %v", e.Err)
	}
	return fmt.Sprintf("paging: fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MaterializeError reports that a raw entry of an otherwise successful page
// could not be converted to the domain type. The whole page is discarded:
// no partially materialized records are yielded, so the set of records the
// caller has seen always corresponds to fully validated pages. Entries and
// Valid describe the discarded page so callers can see what was lost.
type MaterializeError struct {
	// Key is the ordering key of the offending entry.
	Key int64
	// Entry is the offending entry's position within the page.
	Entry int
	// Entries is the page's total entry count after filtering.
	Entries int
	// Valid is how many entries had materialized successfully before the
	// failure.
	Valid int
	Err   error
}

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("paging: materializing entry %d of %d (key %d, %d valid discarded): %v",
		e.Entry, e.Entries, e.Key, e.Valid, e.Err)
}

func (e *MaterializeError) Unwrap() error {
	return e.Err
}
