package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": RequestID(c)})
	})
	return r
}

func TestRequestIDMiddlewareAssignsID(t *testing.T) {
	r := newRouter(RequestIDMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.Regexp(t, regexp.MustCompile(`^req_[0-9A-Za-z]{24}$`), id)
}

func TestRequestIDMiddlewarePropagatesIncoming(t *testing.T) {
	r := newRouter(RequestIDMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req_upstream")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req_upstream", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), "req_upstream")
}

func TestInternalAuthMiddleware(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "secret-key")
	r := newRouter(InternalAuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "secret-key")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInternalAuthMiddlewareFailsClosedWithoutKey(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "")
	r := newRouter(InternalAuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimitMiddlewareBlocksBurst(t *testing.T) {
	r := newRouter(RateLimitMiddleware(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 2}))

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
	assert.Equal(t, http.StatusTooManyRequests, statuses[3])
}

func TestRateLimitMiddlewareIsolatesClients(t *testing.T) {
	r := newRouter(RateLimitMiddleware(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1}))

	for i, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "client %d should have its own bucket", i)
	}
}

func TestServiceRateLimitMiddlewareShared(t *testing.T) {
	r := newRouter(ServiceRateLimitMiddleware(1, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
