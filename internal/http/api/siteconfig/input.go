package siteconfig

// ConfigGetInput for GET /api/config
type ConfigGetInput struct {
	IfNoneMatch string `header:"If-None-Match" doc:"ETag of a cached configuration"`
}

// ConfigUpdateInput for PUT /api/config. The body is decoded by the handler
// so that unknown fields, nulls and wrong types can all be reported. It is
// left without a content type so the framework does not validate it as a
// string before the handler sees it.
type ConfigUpdateInput struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}
