package siteconfig

// ConfigGetOutput for GET /api/config. Body is a PortfolioConfig, or an
// empty object when the configuration has never been written.
type ConfigGetOutput struct {
	ETag string `header:"ETag"`
	Body any
}

// ConfigUpdateOutput for PUT /api/config
type ConfigUpdateOutput struct {
	ETag string `header:"ETag"`
	Body PortfolioConfig
}
