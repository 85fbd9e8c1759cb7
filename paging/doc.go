// Package paging provides cursor-based pagination primitives for traversing
// ordered indexes exposed by remote document stores.
//
// The central type is Iterator, which turns a page-fetch function into a lazy
// sequence of materialized records. The iterator owns the pagination loop:
// it requests pages, tracks the continuation cursor returned with each page,
// applies optional client-side range filters, and detects exhaustion from the
// absence of a continuation cursor.
//
// # Basic Usage
//
// Build an iterator from any store exposing "fetch next page given a cursor"
// semantics:
//
//	it, err := paging.New(fetch, materializeCustomer,
//	    paging.WithPageSize(8),
//	    paging.WithFilter(paging.KeyAtLeast(5)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	for {
//	    c, err := it.Next(ctx)
//	    if errors.Is(err, paging.ErrDone) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    handle(c)
//	}
//
// Or range over the iterator directly:
//
//	for c, err := range it.All(ctx) {
//	    ...
//	}
//
// # Cursors
//
// Cursors are opaque tokens minted by the store that served the page. The
// iterator never inspects them; it only hands the most recent one back on the
// next request. EncodeCursor and DecodeCursor are helpers for store adapters
// that encode an ordering key into a token, not something callers of the
// iterator need.
//
// # Range bounds
//
// Two distinct mechanisms bound a traversal and they deliberately stay split:
//
//   - WithBound sets a standing store-side upper bound, carried on every
//     request, so the store never serves pages past it.
//   - WithFilter drops entries client-side after a page arrives.
//
// Combining an upper bound with a lower-bound filter yields "between"
// semantics without fetching the unbounded tail of the index.
//
// # Request/response pagination
//
// Params, Result and Paginate cover the other common shape: a web handler
// serving one page per request with a cursor for the client to bring back.
// See the REST example for usage.
package paging
