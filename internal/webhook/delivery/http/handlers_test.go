package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ttiring-notification-srv/internal/middleware"
	"ttiring-notification-srv/internal/webhook"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

const testAPIKey = "crawler-secret"

type fakeUseCase struct {
	out   webhook.NewNoticeOutput
	err   error
	calls []webhook.NewNoticeInput
}

func (f *fakeUseCase) HandleNewNotice(ctx context.Context, ip webhook.NewNoticeInput) (webhook.NewNoticeOutput, error) {
	f.calls = append(f.calls, ip)
	return f.out, f.err
}

func setup(uc *fakeUseCase, limiter *rate.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	r := gin.New()
	mw := middleware.New(l, scope.New("0123456789abcdef0123456789abcdef"), nil)
	New(l, uc, nil, testAPIKey, limiter).RegisterRoutes(r.Group("/api/webhook"), mw)
	return r
}

func post(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/new-notice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.APIKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewNotice(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		body     string
		out      webhook.NewNoticeOutput
		err      error
		wantCode int
		wantBody []string
		wantCall bool
	}{
		{
			name:     "processed",
			key:      testAPIKey,
			body:     `{"noticeId":42,"title":"2025 Scholarship Deadline","broadcast":true}`,
			out:      webhook.NewNoticeOutput{NoticeID: 42, Title: "2025 Scholarship Deadline", NotificationsSent: 1},
			wantCode: http.StatusOK,
			wantBody: []string{`"noticeId":42`, `"notificationsSent":1`, `"message":"웹훅 처리 완료"`, `"duplicate":false`},
			wantCall: true,
		},
		{
			name:     "duplicate",
			key:      testAPIKey,
			body:     `{"noticeId":42}`,
			out:      webhook.NewNoticeOutput{NoticeID: 42, Duplicate: true},
			wantCode: http.StatusOK,
			wantBody: []string{`"notificationsSent":0`, `"duplicate":true`},
			wantCall: true,
		},
		{name: "missing key", body: `{"noticeId":42}`, wantCode: http.StatusUnauthorized},
		{name: "wrong key", key: "nope", body: `{"noticeId":42}`, wantCode: http.StatusUnauthorized},
		{name: "missing notice id", key: testAPIKey, body: `{"title":"x"}`, wantCode: http.StatusBadRequest, wantBody: []string{"140001"}},
		{name: "malformed json", key: testAPIKey, body: `{`, wantCode: http.StatusBadRequest},
		{
			name:     "unknown notice",
			key:      testAPIKey,
			body:     `{"noticeId":99}`,
			err:      webhook.ErrNoticeNotFound,
			wantCode: http.StatusNotFound,
			wantBody: []string{"140002"},
			wantCall: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{out: tt.out, err: tt.err}
			r := setup(uc, rate.NewLimiter(rate.Inf, 1))

			w := post(r, tt.key, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
			assert.Equal(t, tt.wantCall, len(uc.calls) == 1)
		})
	}
}

func TestNewNotice_PassesBroadcastFlags(t *testing.T) {
	tests := []struct {
		name string
		body string
		want webhook.NewNoticeInput
	}{
		{"no flags", `{"noticeId":7,"title":"t"}`, webhook.NewNoticeInput{NoticeID: 7, Title: "t"}},
		{"broadcast", `{"noticeId":7,"title":"t","broadcast":true}`, webhook.NewNoticeInput{NoticeID: 7, Title: "t", Broadcast: true}},
		{"category broadcast", `{"noticeId":7,"categoryBroadcast":true}`, webhook.NewNoticeInput{NoticeID: 7, CategoryBroadcast: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			r := setup(uc, rate.NewLimiter(rate.Inf, 1))

			post(r, testAPIKey, tt.body)
			assert.Equal(t, []webhook.NewNoticeInput{tt.want}, uc.calls)
		})
	}
}

func TestNewNotice_RateLimited(t *testing.T) {
	uc := &fakeUseCase{}
	r := setup(uc, middleware.NewHourlyLimiter(1, 2))

	assert.Equal(t, http.StatusOK, post(r, testAPIKey, `{"noticeId":1}`).Code)
	assert.Equal(t, http.StatusOK, post(r, testAPIKey, `{"noticeId":2}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, testAPIKey, `{"noticeId":3}`).Code)
	assert.Len(t, uc.calls, 2)
}

func TestHealth(t *testing.T) {
	r := setup(&fakeUseCase{}, rate.NewLimiter(rate.Inf, 1))

	req := httptest.NewRequest(http.MethodGet, "/api/webhook/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)
	assert.Contains(t, w.Body.String(), `"service":"webhook"`)
}
