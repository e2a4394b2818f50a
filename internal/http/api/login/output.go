package login

// LoginOutput for POST /api/auth/login
type LoginOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         LoginResponse
}
