package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"quickwash/config"
)

func newRateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func performFrom(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_ThrottlesPerClientIP(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	limiterStore = &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}

	r := newRateLimitedRouter()

	assert.Equal(t, http.StatusOK, performFrom(r, "10.0.0.1:40001").Code)
	assert.Equal(t, http.StatusOK, performFrom(r, "10.0.0.1:40002").Code)
	assert.Equal(t, http.StatusTooManyRequests, performFrom(r, "10.0.0.1:40003").Code)

	// A different client IP carries its own budget.
	assert.Equal(t, http.StatusOK, performFrom(r, "10.0.0.2:40001").Code)
}
