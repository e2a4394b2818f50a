package login

// LoginInput for POST /api/auth/login
type LoginInput struct {
	Body struct {
		Username string `json:"username,omitempty" maxLength:"256" doc:"Admin username" example:"admin"`
		Password string `json:"password,omitempty" maxLength:"256" doc:"Admin password" example:"admin123"`
	}
}

// LogoutInput for POST /api/auth/logout
type LogoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token issued by login"`
}
