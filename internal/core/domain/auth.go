package domain

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration payload. Self-registration only admits
// the student and teacher roles.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=student teacher"`
}

// UserSummary is the public projection of an account.
type UserSummary struct {
	ID        int      `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

// AuthResponse is returned by login and register. CookieMaxAge is the
// Set-Cookie max-age in seconds; it is derived from the token's own lifetime
// so cookie and token expire together.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	Roles        []string    `json:"roles"`
	User         UserSummary `json:"user"`
	CookieMaxAge int         `json:"-"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Message string `json:"message"`
}
