package paging

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// Cursor is an opaque token marking a position in an ordered result set.
// Tokens are minted by the store that served a page and are only meaningful
// to that store; the iterator passes them back verbatim and never looks
// inside.
type Cursor string

// CursorAt returns a pointer to c, for fields that distinguish "no cursor"
// from an empty token.
func CursorAt(c Cursor) *Cursor {
	return &c
}

// EncodeCursor encodes an ordering key into a cursor token. Store adapters
// use this to mint continuation tokens from the last key of a page.
func EncodeCursor(key int64) Cursor {
	return Cursor(base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(key, 10))))
}

// DecodeCursor decodes a cursor token minted by EncodeCursor back into its
// ordering key.
func DecodeCursor(c Cursor) (int64, error) {
	b, err := base64.StdEncoding.DecodeString(string(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	key, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return key, nil
}
