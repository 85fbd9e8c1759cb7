package paging

import "fmt"

// Params holds the pagination parameters of one request/response style page,
// typically bound from a web request.
type Params struct {
	Cursor string `json:"cursor" form:"cursor"`
	Limit  int    `json:"limit" form:"limit"`
}

// Result holds one request/response style page of items plus the cursor the
// client brings back for the next page.
type Result[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next,omitempty"`
	HasNext    bool   `json:"has_next"`
}

// NormalizeParams clamps the limit into the acceptable range.
func NormalizeParams(params Params) Params {
	if params.Limit <= 0 || params.Limit > MaxPageSize {
		params.Limit = DefaultPageSize
	}
	return params
}

// PageFunc serves items for Paginate: given the cursor of the previous page
// (empty on the first request) and a limit, it returns up to limit items
// starting just past the cursor.
type PageFunc[T any] func(cursor string, limit int) ([]T, error)

// Paginate serves a single page using pageFunc, requesting one extra item
// past the limit to learn whether a further page exists without a second
// round trip. cursorOf extracts the cursor value of an item; the result's
// NextCursor is taken from the last item kept, so the client resumes
// exactly where this page ended.
func Paginate[T any](params Params, pageFunc PageFunc[T], cursorOf func(T) string) (*Result[T], error) {
	params = NormalizeParams(params)
	items, err := pageFunc(params.Cursor, params.Limit+1)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}

	hasNext := false
	if len(items) > params.Limit {
		hasNext = true
		items = items[:params.Limit]
	}
	if items == nil {
		items = make([]T, 0)
	}

	nextCursor := ""
	if hasNext && len(items) > 0 {
		nextCursor = cursorOf(items[len(items)-1])
	}

	return &Result[T]{
		Items:      items,
		NextCursor: nextCursor,
		HasNext:    hasNext,
	}, nil
}
