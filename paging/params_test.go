package paging

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

// TestNormalizeParams verifies limit clamping.
func TestNormalizeParams(t *testing.T) {
	cases := []struct {
		limit int
		want  int
	}{
		{0, DefaultPageSize},
		{-1, DefaultPageSize},
		{MaxPageSize + 1, DefaultPageSize},
		{20, 20},
	}
	for _, c := range cases {
		got := NormalizeParams(Params{Limit: c.limit})
		if got.Limit != c.want {
			t.Errorf("NormalizeParams(limit %d).Limit = %d, want %d", c.limit, got.Limit, c.want)
		}
	}
}

func pageFromInts(total int) PageFunc[int] {
	return func(cursor string, limit int) ([]int, error) {
		start := 0
		if cursor != "" {
			last, err := strconv.Atoi(cursor)
			if err != nil {
				return nil, err
			}
			start = last
		}
		var items []int
		for i := start; i < total && len(items) < limit; i++ {
			items = append(items, i+1)
		}
		return items, nil
	}
}

// TestPaginate verifies the lookahead trim and that the next cursor points
// at the last item kept, not the lookahead item.
func TestPaginate(t *testing.T) {
	cursorOf := func(v int) string { return strconv.Itoa(v) }

	res, err := Paginate(Params{Limit: 8}, pageFromInts(20), cursorOf)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(res.Items) != 8 {
		t.Fatalf("Items = %v, want 8 items", res.Items)
	}
	if !res.HasNext {
		t.Error("HasNext = false, want true")
	}
	if res.NextCursor != "8" {
		t.Errorf("NextCursor = %q, want %q", res.NextCursor, "8")
	}

	// Resume from the cursor: the next page starts where this one ended.
	res, err = Paginate(Params{Cursor: res.NextCursor, Limit: 8}, pageFromInts(20), cursorOf)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(res.Items) != 8 || res.Items[0] != 9 {
		t.Errorf("second page = %v, want [9..16]", res.Items)
	}

	// Final page: no lookahead overflow, no next cursor.
	res, err = Paginate(Params{Cursor: res.NextCursor, Limit: 8}, pageFromInts(20), cursorOf)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(res.Items) != 4 {
		t.Errorf("final page = %v, want 4 items", res.Items)
	}
	if res.HasNext || res.NextCursor != "" {
		t.Errorf("final page HasNext = %v, NextCursor = %q, want exhausted", res.HasNext, res.NextCursor)
	}
}

// TestPaginateEmpty verifies an empty result serializes as an empty array,
// not null.
func TestPaginateEmpty(t *testing.T) {
	res, err := Paginate(Params{Limit: 8}, pageFromInts(0), func(int) string { return "" })
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", res.Items)
	}
}

// TestPaginateError verifies page function failures are wrapped and
// surfaced.
func TestPaginateError(t *testing.T) {
	cause := errors.New("store down")
	fail := func(cursor string, limit int) ([]int, error) {
		return nil, fmt.Errorf("fetching: %w", cause)
	}
	if _, err := Paginate(Params{Limit: 8}, fail, func(int) string { return "" }); !errors.Is(err, cause) {
		t.Errorf("Paginate() error = %v, want wrapped %v", err, cause)
	}
}
