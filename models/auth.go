package models

type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token for logout and session refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

// AuthSessionResponse is returned by sign-up, login and refresh.
type AuthSessionResponse struct {
	UserID        string `json:"userId"`
	Access        string `json:"access"`
	AccessExpiry  string `json:"accessExpiry"`
	Refresh       string `json:"refresh,omitempty"`
	RefreshExpiry string `json:"refreshExpiry,omitempty"`
	Scope         string `json:"scope"`
}
