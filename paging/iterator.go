package paging

import (
	"context"
	"errors"
	"iter"
)

// Iterator lazily traverses an ordered index by repeatedly fetching pages
// and following the continuation cursor each page carries. It yields one
// materialized record per Next call and reports exhaustion with ErrDone.
//
// An iterator issues at most one fetch at a time and is not safe for
// concurrent use. Independent iterators over the same store are fully
// independent and may run concurrently.
type Iterator[T any] struct {
	fetch       FetchFunc
	materialize MaterializeFunc[T]
	size        int
	direction   Direction
	bound       *Cursor
	filter      Filter

	buf     []T
	cursor  *Cursor
	started bool
	done    bool
	err     error
}

type config struct {
	size      int
	direction Direction
	bound     *Cursor
	filter    Filter
}

// Option configures an Iterator.
type Option func(*config)

// WithPageSize sets the per-request page size. The size is a request, not a
// guarantee: the store may return fewer entries per page. Sizes above
// MaxPageSize are clamped; non-positive sizes are rejected by New.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.size = n
	}
}

// WithDirection sets the traversal direction. The default is Forward.
func WithDirection(d Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}

// WithBound sets a store-side upper bound on the traversal, carried on
// every request as a standing limit so the store never serves entries past
// it. In a backward traversal the bound also determines where the traversal
// starts, since the first page served is the bounded range's last.
func WithBound(c Cursor) Option {
	return func(cfg *config) {
		cfg.bound = &c
	}
}

// WithFilter sets a client-side range filter applied to each fetched page
// before materialization. A page whose entries are all filtered out does
// not end the traversal; the iterator keeps following cursors.
func WithFilter(f Filter) Option {
	return func(c *config) {
		c.filter = f
	}
}

// New creates an iterator over the index served by fetch. Configuration
// errors (nil functions, non-positive page size) are reported here rather
// than on first use.
func New[T any](fetch FetchFunc, materialize MaterializeFunc[T], opts ...Option) (*Iterator[T], error) {
	if fetch == nil {
		return nil, errors.New("paging: fetch function is required")
	}
	if materialize == nil {
		return nil, errors.New("paging: materialize function is required")
	}

	cfg := config{size: DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size <= 0 {
		return nil, errors.New("paging: page size must be positive")
	}
	if cfg.size > MaxPageSize {
		cfg.size = MaxPageSize
	}

	return &Iterator[T]{
		fetch:       fetch,
		materialize: materialize,
		size:        cfg.size,
		direction:   cfg.direction,
		bound:       cfg.bound,
		filter:      cfg.filter,
	}, nil
}

// Next returns the next record of the traversal, fetching further pages as
// needed. It returns ErrDone once the index is exhausted, permanently. Any
// fetch or materialization failure is terminal: the same error is returned
// from every subsequent call without issuing further requests.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if it.err != nil {
		return zero, it.err
	}
	if it.done {
		return zero, ErrDone
	}

	// A drained buffer with a continuation cursor means more pages may
	// exist; an empty page (for instance one fully filtered out) is not an
	// exhaustion signal as long as it carried a cursor.
	for len(it.buf) == 0 {
		if it.started && it.cursor == nil {
			it.done = true
			return zero, ErrDone
		}
		if err := it.fetchPage(ctx); err != nil {
			it.err = err
			return zero, err
		}
	}

	v := it.buf[0]
	it.buf = it.buf[1:]
	return v, nil
}

func (it *Iterator[T]) fetchPage(ctx context.Context) error {
	req := Request{Size: it.size, Bound: it.bound, Reverse: it.direction == Backward}
	switch it.direction {
	case Forward:
		req.After = it.cursor
	case Backward:
		req.Before = it.cursor
	}

	page, err := it.fetch(ctx, req)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return err
		}
		return &FetchError{Err: err}
	}

	it.started = true
	if page == nil {
		it.cursor = nil
		return nil
	}
	if it.direction == Forward {
		it.cursor = page.After
	} else {
		it.cursor = page.Before
	}

	entries := page.Entries
	if it.filter != nil {
		kept := make([]RawEntry, 0, len(entries))
		for _, e := range entries {
			if it.filter(e.Key) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	buf := make([]T, 0, len(entries))
	for i, e := range entries {
		v, err := it.materialize(e)
		if err != nil {
			return &MaterializeError{
				Key:     e.Key,
				Entry:   i,
				Entries: len(entries),
				Valid:   len(buf),
				Err:     err,
			}
		}
		buf = append(buf, v)
	}
	it.buf = buf
	return nil
}

// All returns the remainder of the traversal as a range-over-func sequence.
// Iteration stops at ErrDone; any other error is yielded once and ends the
// sequence.
func (it *Iterator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := it.Next(ctx)
			if errors.Is(err, ErrDone) {
				return
			}
			if !yield(v, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Collect drains the traversal into a slice.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for {
		v, err := it.Next(ctx)
		if errors.Is(err, ErrDone) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
