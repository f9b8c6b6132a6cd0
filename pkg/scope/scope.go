package scope

import (
	"context"
	"fmt"
	"strconv"

	"ttiring-notification-srv/internal/model"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}
	return *payload, nil
}

// CreateToken overwrites the timing claims and assigns a fresh token id.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := m.now()
	payload.ExpiresAt = now.Add(TokenExpirationDuration).Unix()
	payload.Id = uuid.NewString()
	payload.NotBefore = now.Unix()
	payload.IssuedAt = now.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(m.secretKey))
}

// NewScope converts verified claims into the caller identity used by use cases.
func NewScope(payload Payload) (model.Scope, error) {
	id, err := strconv.ParseInt(payload.Subject, 10, 64)
	if err != nil || id <= 0 {
		return model.Scope{}, ErrInvalidSubject
	}
	return model.Scope{
		UserID: id,
		Email:  payload.Email,
		JTI:    payload.Id,
	}, nil
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the zero Scope when none is set.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}
