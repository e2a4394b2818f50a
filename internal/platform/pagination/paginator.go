package pagination

import (
	"net/url"
	"strconv"
)

// Page is one slice of a collection plus its navigation links.
type Page[T any] struct {
	Items      []T
	Total      int
	NextCursor string
	LinkHeader string
}

// Paginate returns the page of items selected by p. Items must be in a
// stable order; key identifies an item in the cursor. A cursor whose key is
// no longer present is rejected with ErrInvalidCursor.
func Paginate[T any](items []T, p Params, kind string, key func(T) string, path string, query url.Values) (Page[T], error) {
	cursor, err := DecodeCursor(p.Cursor, kind)
	if err != nil {
		return Page[T]{}, err
	}

	start := 0
	if cursor.After != "" {
		start = -1
		for i, item := range items {
			if key(item) == cursor.After {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page[T]{}, ErrInvalidCursor
		}
	}

	limit := p.PageSize()
	end := min(start+limit, len(items))
	page := Page[T]{
		Items: append([]T{}, items[start:end]...),
		Total: len(items),
	}
	if end < len(items) && end > start {
		page.NextCursor = Cursor{Kind: kind, After: key(items[end-1])}.Encode()
		q := cloneValues(query)
		q.Set("limit", strconv.Itoa(limit))
		page.LinkHeader = BuildLinkHeader(path, q, page.NextCursor)
	}
	return page, nil
}
