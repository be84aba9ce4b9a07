package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotbook/config"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actorId": ActorID(c)})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"
	router := newAuthRouter()

	token, err := utils.GenerateToken("user-1", []string{"requester"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"
	router := newAuthRouter()

	expired, err := utils.GenerateToken("user-1", nil, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"
	token, err := utils.GenerateToken("user-1", nil, time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	defer func() { config.AppConfig.JWTSecret = "test-jwt-secret" }()

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
