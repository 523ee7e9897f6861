package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})
	operatorToken, err := auth.GenerateToken("ops", domain.RoleOperator, time.Hour)
	require.NoError(t, err)

	handler := AuthMiddleware(auth, "/healthcheck")(okHandler())

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "Rota pública", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Sem header", path: "/v1/dashboard", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/dashboard", header: operatorToken, wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/dashboard", header: "Bearer xxx", wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/dashboard", header: "Bearer " + operatorToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	auth := authenticating.NewService(&config.Config{})

	var claims *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = ClaimsFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/ingest/csv", nil))
	require.NotNil(t, claims)
	assert.Equal(t, domain.RoleOperator, claims.Role)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem claims", wantStatus: http.StatusUnauthorized},
		{name: "Viewer bloqueado", claims: &domain.Claims{Role: domain.RoleViewer}, wantStatus: http.StatusForbidden},
		{name: "Operador liberado", claims: &domain.Claims{Role: domain.RoleOperator}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/snapshot-refresh", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			OperatorOnly()(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 2)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))

	now = now.Add(limiterIdleTTL + 2*time.Minute)
	limiter.Allow("10.0.0.3")
	assert.Len(t, limiter.clients, 1)
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(0.001, 1)(okHandler())

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, apiErrors.StatusFor(apiErrors.ErrTooManyRequests), second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, "corr-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "corr-1", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
