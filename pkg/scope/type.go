package scope

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// Payload is the claim set of an access token. Subject carries the numeric user id.
type Payload struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Type  string `json:"type"`
}

type implManager struct {
	secretKey string
	now       func() time.Time
}

var nowFunc = time.Now

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
