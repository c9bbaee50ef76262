package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenExpired inspects a bearer token issued by the backend and reports
// whether its expiry has passed. The client holds no signing secret, so the
// claims are read without verification; actual enforcement stays with the
// backend. Tokens that do not parse as JWTs are treated as opaque and never
// expire locally.
func TokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
