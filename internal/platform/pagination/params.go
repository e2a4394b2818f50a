package pagination

// MaxLimit is the largest page size a client may request.
const MaxLimit = 100

// Params embeds into Huma input structs for pagination.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page; omit for the full list" minimum:"0" maximum:"100"`
}

// Paged reports whether the client asked for a page rather than the full list.
func (p Params) Paged() bool {
	return p.Limit > 0 || p.Cursor != ""
}

// PageSize returns the effective limit for a paged request.
func (p Params) PageSize() int {
	if p.Limit <= 0 {
		return MaxLimit
	}
	return min(p.Limit, MaxLimit)
}
