package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func get(router *gin.Engine, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/test", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestCORS tests that cross-origin requests get CORS headers
func TestCORS(t *testing.T) {
	router := newRouter(CORS(DefaultCORSConfig()))

	w := get(router, "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// Same-origin requests carry no CORS headers
	w = get(router, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSPreflight tests the OPTIONS preflight path
func TestCORSPreflight(t *testing.T) {
	router := newRouter(CORS(DefaultCORSConfig()))

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}

// TestDefaultCORSConfig tests the shipped defaults
func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()

	assert.Contains(t, cfg.AllowOrigins, "*")
	assert.Contains(t, cfg.AllowMethods, "POST")
	assert.Contains(t, cfg.AllowMethods, "DELETE")
	assert.Equal(t, 12*time.Hour, cfg.MaxAge)
}

// TestRateLimitPerIP tests burst exhaustion and per-client isolation
func TestRateLimitPerIP(t *testing.T) {
	router := newRouter(RateLimit(RateLimitConfig{RequestsPerSecond: 1, Burst: 2}))

	assert.Equal(t, http.StatusOK, get(router, "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusOK, get(router, "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, "10.0.0.1:1234", nil).Code)

	// A different client has its own bucket
	assert.Equal(t, http.StatusOK, get(router, "10.0.0.2:1234", nil).Code)
}

// TestGlobalRateLimit tests the shared bucket across clients
func TestGlobalRateLimit(t *testing.T) {
	router := newRouter(GlobalRateLimit(RateLimitConfig{RequestsPerSecond: 1, Burst: 2}))

	assert.Equal(t, http.StatusOK, get(router, "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusOK, get(router, "10.0.0.2:1234", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, "10.0.0.3:1234", nil).Code)
}

// TestRequestID tests correlation ID generation and passthrough
func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	w := get(router, "", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = get(router, "", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
