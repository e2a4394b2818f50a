package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader constructs an RFC 8288 Link header with "next" and "first"
// relations, preserving the other query parameters. The cursor parameter is
// dropped from the "first" link.
func BuildLinkHeader(path string, query url.Values, nextCursor string) string {
	var links []string
	if nextCursor != "" {
		q := cloneValues(query)
		q.Set("cursor", nextCursor)
		links = append(links, formatLink(path, q, "next"))
	}
	first := cloneValues(query)
	first.Del("cursor")
	links = append(links, formatLink(path, first, "first"))
	return strings.Join(links, ", ")
}

func formatLink(path string, q url.Values, rel string) string {
	if len(q) == 0 {
		return fmt.Sprintf("<%s>; rel=%q", path, rel)
	}
	return fmt.Sprintf("<%s?%s>; rel=%q", path, q.Encode(), rel)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
