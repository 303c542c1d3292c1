package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InspectTokenExpiry extracts the expiry claim from a stored bearer token
// without verifying its signature. The client treats the token as opaque and
// never rejects it locally; the result is used only for diagnostics around
// session restore (e.g. logging that a restore failure was likely caused by
// an expired token).
//
// Returns ok=false when the token is not a JWT or carries no exp claim.
func InspectTokenExpiry(tokenString string) (expiresAt time.Time, ok bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
