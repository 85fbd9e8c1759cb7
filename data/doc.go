// Package data defines the document store boundary of the toolkit.
//
// Store is the contract tutorial applications program against: schema
// setup, batch writes, point lookups, and cursor-chained page fetches. The
// FetchPage method satisfies paging.FetchFunc directly, so a store plugs
// into a paging.Iterator as-is:
//
//	it, err := paging.New(store.FetchPage, materialize, paging.WithPageSize(8))
//
// Store implementations register themselves as drivers when imported:
//
//	import _ "github.com/docubase/docursor/data/mongodb"
//
//	store, err := data.Open(ctx, cfg.Data)
package data
