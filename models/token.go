package models

// Token is the response body of POST /token. AccessToken is an opaque bearer
// credential from the client's point of view; the client stores it verbatim
// and attaches it to authenticated requests, it never validates the contents.
type Token struct {
	// AccessToken is the raw bearer token string.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme reported by the server,
	// in practice always "bearer".
	TokenType string `json:"token_type"`
}

// String returns the raw bearer token string.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.AccessToken
}
