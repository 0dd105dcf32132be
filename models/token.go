package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users.
//
// The standard "sub" claim carries the user ID; Username is kept as a
// private claim so clients can display who they are logged in as
// without an extra request.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login name of the token owner.
	Username string `json:"username"`
}

// Token is a signed bearer credential together with the identity
// extracted from its claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// Username is the owner login taken from the "username" claim.
	Username string `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
