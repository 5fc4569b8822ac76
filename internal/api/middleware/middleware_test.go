package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/pkg/jwtauth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func adminEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetAdminID(r.Context())
		if ok {
			w.Header().Set("X-Admin", strconv.FormatInt(id, 10))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAdminAuth(t *testing.T) {
	issuer := jwtauth.NewIssuer("test-secret", time.Hour)
	token, _, err := issuer.Issue(3, "admin")
	require.NoError(t, err)

	h := AdminAuth(issuer, nopLogger{})(adminEcho())

	tests := []struct {
		name   string
		header string
		status int
		admin  string
	}{
		{name: "valid", header: "Bearer " + token, status: http.StatusNoContent, admin: "3"},
		{name: "lowercase scheme", header: "bearer " + token, status: http.StatusNoContent, admin: "3"},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.admin, w.Header().Get("X-Admin"))
		})
	}
}

func TestAdminAuth_RejectsForeignSignature(t *testing.T) {
	token, _, err := jwtauth.NewIssuer("other-secret", time.Hour).Issue(3, "admin")
	require.NoError(t, err)

	h := AdminAuth(jwtauth.NewIssuer("test-secret", time.Hour), nopLogger{})(adminEcho())
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAdminAuth(t *testing.T) {
	issuer := jwtauth.NewIssuer("test-secret", time.Hour)
	h := OptionalAdminAuth(issuer, nopLogger{})(adminEcho())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("X-Admin"))

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Authorization", "Bearer broken")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

type observed struct {
	method, route string
	status        int
}

type httpMetricsMock struct {
	mu   sync.Mutex
	seen []observed
}

func (m *httpMetricsMock) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, observed{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &httpMetricsMock{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/api/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/42", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observed{http.MethodGet, "/api/bookings/{bookingId}", http.StatusNotFound}, m.seen[0])
}

func TestRecovery(t *testing.T) {
	h := Recovery(nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
