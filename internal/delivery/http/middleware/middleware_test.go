package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-listing/config"
	"hotel-listing/internal/domain/entity"
	"hotel-listing/internal/infrastructure/cache"
	"hotel-listing/pkg/jwt"
	"hotel-listing/pkg/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

type authFixture struct {
	middleware *AuthMiddleware
	jwtService *jwt.JWTService
	tokens     *cache.TokenStore
	redis      *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	tokens := cache.NewTokenStore(client)
	return &authFixture{
		middleware: NewAuthMiddleware(jwtService, tokens),
		jwtService: jwtService,
		tokens:     tokens,
		redis:      mr,
	}
}

func (f *authFixture) issue(t *testing.T, userID uuid.UUID, roles ...string) string {
	t.Helper()
	token, tokenID, err := f.jwtService.GenerateAccessToken(userID, "user@hotels.test", roles)
	require.NoError(t, err)
	require.NoError(t, f.tokens.Store(context.Background(), cache.AccessTokenKind, userID, tokenID, time.Minute))
	return token
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	valid := f.issue(t, userID, entity.RoleAdministrator)

	refresh, _, err := f.jwtService.GenerateRefreshToken(userID, "user@hotels.test", nil)
	require.NoError(t, err)
	unstored, _, err := f.jwtService.GenerateAccessToken(userID, "user@hotels.test", nil)
	require.NoError(t, err)

	var seenID uuid.UUID
	var seenRoles []string
	handler := f.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = GetUserIDFromContext(r.Context())
		seenRoles, _ = GetRolesFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, want: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + unstored, want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, userID, seenID)
	assert.Equal(t, []string{entity.RoleAdministrator}, seenRoles)
}

func TestAuthenticate_StoreUnavailable(t *testing.T) {
	f := newAuthFixture(t)
	token := f.issue(t, uuid.New())
	f.redis.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.middleware.Authenticate(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireRole(t *testing.T) {
	handler := RequireAdministrator(http.HandlerFunc(okHandler))

	serve := func(ctx context.Context) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/hotel", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	anonymous := serve(context.Background())
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
	assert.False(t, decodeError(t, anonymous).Success)

	user := serve(WithClaims(context.Background(), &jwt.Claims{UserID: uuid.New(), Roles: []string{entity.RoleUser}}))
	assert.Equal(t, http.StatusForbidden, user.Code)

	admin := serve(WithClaims(context.Background(), &jwt.Claims{UserID: uuid.New(), Roles: []string{entity.RoleUser, entity.RoleAdministrator}}))
	assert.Equal(t, http.StatusOK, admin.Code)
}

func TestRequestedAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "default", target: "/api/country", want: "1.0"},
		{name: "query", target: "/api/country?api-version=2.0", want: "2.0"},
		{name: "major only", target: "/api/country?api-version=2", want: "2.0"},
		{name: "header", target: "/api/country", header: "2.0", want: "2.0"},
		{name: "query wins", target: "/api/country?api-version=1.0", header: "2.0", want: "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(APIVersionHeader, tt.header)
			}
			assert.Equal(t, tt.want, RequestedAPIVersion(req))
		})
	}
}

func TestMatchAPIVersionRoutes(t *testing.T) {
	router := mux.NewRouter()
	router.Use(ReportAPIVersions)
	router.HandleFunc("/api/country", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("v1")) }).
		MatcherFunc(MatchAPIVersion("1.0"))
	router.HandleFunc("/api/country", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("v2")) }).
		MatcherFunc(MatchAPIVersion("2.0"))

	for target, want := range map[string]string{
		"/api/country":                 "v1",
		"/api/country?api-version=2.0": "v2",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, want, rec.Body.String())
		assert.Equal(t, "1.0", rec.Header().Get(SupportedVersionsHeader))
		assert.Equal(t, "2.0", rec.Header().Get(DeprecatedVersionsHeader))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/country?api-version=3.0", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDAndAccessLog(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	router := mux.NewRouter()
	router.Use(RequestID, AccessLog(log))
	router.HandleFunc("/api/hotel/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/hotel/7", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "req-123", entry.Data["request_id"])
	assert.Equal(t, "/api/hotel/{id}", entry.Data["route"])
	assert.Equal(t, http.StatusNoContent, entry.Data["status"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/hotel/8", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetricsMiddleware(reg)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.Use(metrics.Handle)
	router.HandleFunc("/api/hotel/{id}", okHandler)

	for _, target := range []string{"/api/hotel/1", "/api/hotel/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requestCount.WithLabelValues(http.MethodGet, "/api/hotel/{id}", "200")))

	_, err = NewMetricsMiddleware(reg)
	assert.Error(t, err)
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := NewRateLimitMiddleware(config.RateLimitConfig{RPS: 1, Burst: 2}).Handle(http.HandlerFunc(okHandler))

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	unlimited := NewRateLimitMiddleware(config.RateLimitConfig{}).Handle(http.HandlerFunc(okHandler))
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		unlimited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("any origin", func(t *testing.T) {
		handler := NewCORSMiddleware().Handle(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/hotel", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Location")

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("listed origins", func(t *testing.T) {
		handler := NewCORSMiddleware("https://admin.hotels.test").Handle(next)

		req := httptest.NewRequest(http.MethodGet, "/api/hotel", nil)
		req.Header.Set("Origin", "https://admin.hotels.test")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "https://admin.hotels.test", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))

		req = httptest.NewRequest(http.MethodGet, "/api/hotel", nil)
		req.Header.Set("Origin", "https://evil.test")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}
