package paging

// Filter is a client-side range predicate over an entry's ordering key.
// Entries whose key does not satisfy the filter are dropped after a page is
// fetched, before materialization. A nil Filter accepts everything.
//
// Filters restrict entries within fetched pages; they do not restrict which
// pages the store serves. Use WithBound for that.
type Filter func(key int64) bool

// KeyAtLeast returns a filter accepting keys greater than or equal to min.
// Together with an upper bound cursor this expresses "between" semantics.
func KeyAtLeast(min int64) Filter {
	return func(key int64) bool {
		return key >= min
	}
}

// KeyAtMost returns a filter accepting keys less than or equal to max.
func KeyAtMost(max int64) Filter {
	return func(key int64) bool {
		return key <= max
	}
}

// And combines filters, accepting only keys every filter accepts.
// Nil filters are skipped; And() with no arguments accepts everything.
func And(filters ...Filter) Filter {
	return func(key int64) bool {
		for _, f := range filters {
			if f != nil && !f(key) {
				return false
			}
		}
		return true
	}
}
