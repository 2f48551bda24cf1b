package authn

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidJWT = errors.New("invalid jwt token")
var ErrInvalidClaims = errors.New("invalid claims")
var ErrMissingSubject = errors.New("token has no subject")

// Claims are the identity provider claims the API relies on. The subject
// is the user id used throughout the store.
type Claims struct {
	jwt.StandardClaims
	Username    string `json:"preferred_username"`
	Email       string `json:"email"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// UserID returns the subject of the token.
func (c Claims) UserID() string {
	return c.Subject
}

// ParseClaims decodes the claims of a bearer token. Signatures are checked by
// the gateway in front of the API, so validation errors are ignored here.
func ParseClaims(token string) (Claims, error) {
	claims := Claims{}
	if t, err := jwt.ParseWithClaims(token, &claims, nil); err != nil {
		if _, ok := err.(*jwt.ValidationError); !ok {
			return claims, ErrInvalidJWT
		}

		if t == nil {
			return claims, ErrInvalidClaims
		}
	}

	if claims.Subject == "" {
		return claims, ErrMissingSubject
	}
	return claims, nil
}
