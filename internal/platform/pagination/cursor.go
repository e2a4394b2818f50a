package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded or belongs to
// another collection.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the position after which the next page starts.
type Cursor struct {
	Kind  string // collection the cursor was issued for
	After string // key of the last item already returned
}

// Encode returns an opaque URL-safe token.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.After))
}

// DecodeCursor parses a token issued for kind. An empty token is the start
// of the collection.
func DecodeCursor(token, kind string) (Cursor, error) {
	if token == "" {
		return Cursor{Kind: kind}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	k, after, ok := strings.Cut(string(b), ":")
	if !ok || k != kind {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: k, After: after}, nil
}
