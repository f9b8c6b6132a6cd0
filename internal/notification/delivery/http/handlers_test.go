package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ttiring-notification-srv/internal/middleware"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/paginator"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	notification.UseCase

	sent    bool
	sendErr error
	gotUser int64
	gotPage paginator.PaginateQuery
	out     notification.ListHistoryOutput
}

func (f *fakeUseCase) SendTestNotification(ctx context.Context, userID int64) (bool, error) {
	f.gotUser = userID
	return f.sent, f.sendErr
}

func (f *fakeUseCase) ListHistory(ctx context.Context, sc model.Scope, ip notification.ListHistoryInput) (notification.ListHistoryOutput, error) {
	f.gotUser = sc.UserID
	f.gotPage = ip.PaginateQuery
	return f.out, nil
}

func setup(t *testing.T, uc *fakeUseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	jwtMgr := scope.New("0123456789abcdef0123456789abcdef")

	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(l, jwtMgr, nil))

	token, err := jwtMgr.CreateToken(scope.Payload{StandardClaims: jwt.StandardClaims{Subject: "7"}})
	require.NoError(t, err)
	return r, token
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendTest(t *testing.T) {
	tests := []struct {
		name     string
		sent     bool
		sendErr  error
		wantCode int
		wantBody string
	}{
		{"delivered", true, nil, http.StatusOK, `"sent":true`},
		{"no device", false, nil, http.StatusOK, `"sent":false`},
		{"unknown user", false, notification.ErrUserNotFound, http.StatusNotFound, `130002`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{sent: tt.sent, sendErr: tt.sendErr}
			r, token := setup(t, uc)

			w := do(r, http.MethodPost, "/api/v1/notifications/test", token)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Equal(t, int64(7), uc.gotUser)
		})
	}
}

func TestSendTest_RequiresToken(t *testing.T) {
	r, _ := setup(t, &fakeUseCase{})

	w := do(r, http.MethodPost, "/api/v1/notifications/test", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListHistory(t *testing.T) {
	uc := &fakeUseCase{out: notification.ListHistoryOutput{
		Histories: []model.NotificationHistory{
			{ID: 1, NoticeID: 42, Title: "새 공지사항이 등록되었습니다", Status: model.NotificationStatusFailed, ErrorMessage: "timeout"},
		},
		Paginator: paginator.Paginator{Total: 1, Count: 1, PerPage: 10, CurrentPage: 2},
	}}
	r, token := setup(t, uc)

	w := do(r, http.MethodGet, "/api/v1/notifications/history?page=2&limit=10", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, paginator.PaginateQuery{Page: 2, Limit: 10}, uc.gotPage)

	var body struct {
		Data struct {
			Items []struct {
				NoticeID     int64  `json:"noticeId"`
				Status       string `json:"status"`
				ErrorMessage string `json:"errorMessage"`
			} `json:"items"`
			Paginator paginator.PaginatorResponse `json:"paginator"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, int64(42), body.Data.Items[0].NoticeID)
	assert.Equal(t, "FAILED", body.Data.Items[0].Status)
	assert.Equal(t, "timeout", body.Data.Items[0].ErrorMessage)
	assert.Equal(t, int64(1), body.Data.Paginator.Total)
}

func TestListHistory_WrongQuery(t *testing.T) {
	r, token := setup(t, &fakeUseCase{})

	w := do(r, http.MethodGet, "/api/v1/notifications/history?page=abc", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
