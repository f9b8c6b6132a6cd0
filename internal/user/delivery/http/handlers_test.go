package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ttiring-notification-srv/internal/middleware"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	user.UseCase

	me  model.User
	err error

	gotScope model.Scope
	gotToken string
	cleared  bool
}

func (f *fakeUseCase) DetailMe(ctx context.Context, sc model.Scope) (model.User, error) {
	f.gotScope = sc
	return f.me, f.err
}

func (f *fakeUseCase) UpdatePushToken(ctx context.Context, sc model.Scope, ip user.UpdatePushTokenInput) error {
	f.gotScope, f.gotToken = sc, ip.Token
	return f.err
}

func (f *fakeUseCase) ClearPushToken(ctx context.Context, sc model.Scope) error {
	f.gotScope, f.cleared = sc, true
	return f.err
}

func setup(t *testing.T, uc *fakeUseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	jwtMgr := scope.New("0123456789abcdef0123456789abcdef")

	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(l, jwtMgr, nil))

	token, err := jwtMgr.CreateToken(scope.Payload{StandardClaims: jwt.StandardClaims{Subject: "3"}})
	require.NoError(t, err)
	return r, token
}

func call(r *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdatePushTokenHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantBody   string
	}{
		{name: "stored", body: `{"pushToken":"device-token-1"}`, wantStatus: http.StatusOK},
		{name: "missing token", body: `{}`, wantStatus: http.StatusBadRequest, wantBody: `120001`},
		{name: "blank token", body: `{"pushToken":" "}`, ucErr: user.ErrPushTokenEmpty, wantStatus: http.StatusBadRequest, wantBody: `120004`},
		{name: "too long", body: `{"pushToken":"x"}`, ucErr: user.ErrPushTokenTooLong, wantStatus: http.StatusBadRequest, wantBody: `120005`},
		{name: "inactive", body: `{"pushToken":"x"}`, ucErr: user.ErrUserInactive, wantStatus: http.StatusForbidden, wantBody: `120003`},
		{name: "unknown user", body: `{"pushToken":"x"}`, ucErr: user.ErrUserNotFound, wantStatus: http.StatusNotFound, wantBody: `120002`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			r, token := setup(t, uc)

			w := call(r, token, http.MethodPut, "/api/v1/users/me/push-token", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdatePushTokenHandlerPassesToken(t *testing.T) {
	uc := &fakeUseCase{}
	r, token := setup(t, uc)

	w := call(r, token, http.MethodPut, "/api/v1/users/me/push-token", `{"pushToken":"device-token-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Scope{UserID: 3}, uc.gotScope)
	assert.Equal(t, "device-token-1", uc.gotToken)
}

func TestClearPushTokenHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r, token := setup(t, uc)

	w := call(r, token, http.MethodDelete, "/api/v1/users/me/push-token", ``)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.cleared)
	assert.Equal(t, int64(3), uc.gotScope.UserID)
}

func TestDetailMe(t *testing.T) {
	tok := "device-token-1"
	tests := []struct {
		name     string
		me       model.User
		wantBody string
	}{
		{name: "without token", me: model.User{ID: 3, Email: "s@inu.ac.kr", IsActive: true}, wantBody: `"pushTokenRegistered":false`},
		{name: "with token", me: model.User{ID: 3, Email: "s@inu.ac.kr", IsActive: true, PushToken: &tok}, wantBody: `"pushTokenRegistered":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, token := setup(t, &fakeUseCase{me: tt.me})

			w := call(r, token, http.MethodGet, "/api/v1/users/me", ``)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), tok)
		})
	}
}
