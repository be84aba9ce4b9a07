package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"slotbook/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded-for takes the first hop",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.7",
		},
		{
			name:       "real-ip when forwarded-for is absent",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.8 "},
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.8",
		},
		{
			name:       "socket address with port stripped",
			remoteAddr: "198.51.100.2:51234",
			want:       "198.51.100.2",
		},
		{
			name:       "empty forwarded-for entry falls through",
			headers:    map[string]string{"X-Forwarded-For": " ,10.0.0.1"},
			remoteAddr: "198.51.100.2:51234",
			want:       "198.51.100.2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, clientIP(c))
		})
	}
}

func TestRateLimitMiddleware_PerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.MaxRequestsPerMin = 2

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", ip)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.20"))
	assert.Equal(t, http.StatusOK, do("203.0.113.20"))
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.20"))

	// A different caller has its own bucket.
	assert.Equal(t, http.StatusOK, do("203.0.113.21"))
}
