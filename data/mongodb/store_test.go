package mongodb

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/docubase/docursor/data"
	"github.com/docubase/docursor/data/config"
	"github.com/docubase/docursor/paging"
)

// TestDriverName verifies the driver returns the correct name
func TestDriverName(t *testing.T) {
	d := &driver{}
	if got := d.Name(); got != "mongodb" {
		t.Errorf("Name() = %v, want %v", got, "mongodb")
	}
}

// TestDriverOpen_InvalidConfig tests that incomplete configs are rejected
func TestDriverOpen_InvalidConfig(t *testing.T) {
	d := &driver{}
	ctx := context.Background()

	if _, err := d.Open(ctx, nil); err == nil {
		t.Error("Open() with nil config should return error")
	}
	if _, err := d.Open(ctx, &config.Config{}); err == nil {
		t.Error("Open() without mongodb config should return error")
	}
	if _, err := d.Open(ctx, &config.Config{MongoDB: &config.MongoDB{}}); err == nil {
		t.Error("Open() with empty URI should return error")
	}
}

// TestDriverRegistered verifies the driver self-registers under "mongodb"
func TestDriverRegistered(t *testing.T) {
	if _, err := data.GetDriver("mongodb"); err != nil {
		t.Errorf("GetDriver(mongodb) error = %v", err)
	}
}

// TestPageFilter verifies the keyset condition built for each request shape.
func TestPageFilter(t *testing.T) {
	after := paging.EncodeCursor(8)
	before := paging.EncodeCursor(9)
	bound := paging.EncodeCursor(11)

	cases := []struct {
		name         string
		req          paging.Request
		wantCond     map[string]int64
		wantBackward bool
	}{
		{
			name:     "first page",
			req:      paging.Request{Size: 8},
			wantCond: nil,
		},
		{
			name:     "after cursor",
			req:      paging.Request{Size: 8, After: &after},
			wantCond: map[string]int64{"$gt": 8},
		},
		{
			name:     "after cursor with standing bound",
			req:      paging.Request{Size: 8, After: &after, Bound: &bound},
			wantCond: map[string]int64{"$gt": 8, "$lte": 11},
		},
		{
			name:         "before cursor",
			req:          paging.Request{Size: 8, Before: &before},
			wantCond:     map[string]int64{"$lt": 9},
			wantBackward: true,
		},
		{
			name:         "reverse first page",
			req:          paging.Request{Size: 8, Reverse: true, Bound: &bound},
			wantCond:     map[string]int64{"$lte": 11},
			wantBackward: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			filter, backward, err := pageFilter(c.req)
			if err != nil {
				t.Fatalf("pageFilter() error = %v", err)
			}
			if backward != c.wantBackward {
				t.Errorf("backward = %v, want %v", backward, c.wantBackward)
			}

			if c.wantCond == nil {
				if len(filter) != 0 {
					t.Errorf("filter = %v, want empty", filter)
				}
				return
			}
			cond, ok := filter["key"].(bson.M)
			if !ok {
				t.Fatalf("key condition = %T(%v), want bson.M", filter["key"], filter["key"])
			}
			if len(cond) != len(c.wantCond) {
				t.Fatalf("condition = %v, want %v", cond, c.wantCond)
			}
			for op, val := range c.wantCond {
				if cond[op] != val {
					t.Errorf("condition[%s] = %v, want %v", op, cond[op], val)
				}
			}
		})
	}
}

// TestPageFilter_MutuallyExclusiveCursors verifies both cursors at once is
// rejected.
func TestPageFilter_MutuallyExclusiveCursors(t *testing.T) {
	after := paging.EncodeCursor(1)
	before := paging.EncodeCursor(2)
	if _, _, err := pageFilter(paging.Request{After: &after, Before: &before}); err == nil {
		t.Error("pageFilter() with both cursors should fail")
	}
}

// TestPageFilter_InvalidCursor verifies foreign tokens are rejected.
func TestPageFilter_InvalidCursor(t *testing.T) {
	bad := paging.Cursor("%%%")
	if _, _, err := pageFilter(paging.Request{After: &bad}); err == nil {
		t.Error("pageFilter() with invalid cursor should fail")
	}
}
