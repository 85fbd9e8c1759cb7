package paging

import (
	"errors"
	"testing"
)

// TestCursorRoundTrip verifies keys survive encoding.
func TestCursorRoundTrip(t *testing.T) {
	for _, key := range []int64{0, 1, 20, -7, 1<<62 + 3} {
		c := EncodeCursor(key)
		got, err := DecodeCursor(c)
		if err != nil {
			t.Fatalf("DecodeCursor(EncodeCursor(%d)) error = %v", key, err)
		}
		if got != key {
			t.Errorf("DecodeCursor(EncodeCursor(%d)) = %d", key, got)
		}
	}
}

// TestDecodeCursorInvalid verifies foreign tokens are rejected with
// ErrInvalidCursor.
func TestDecodeCursorInvalid(t *testing.T) {
	for _, c := range []Cursor{"%%%", "bm90LWEtbnVtYmVy"} {
		if _, err := DecodeCursor(c); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q) error = %v, want ErrInvalidCursor", c, err)
		}
	}
}
