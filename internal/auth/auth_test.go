package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assignment-workflow-backend/internal/config"
	"assignment-workflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Hour})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "s3cret"})
		assert.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := (&AuthConfig{TokenTTL: time.Hour}).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non positive ttl", func(t *testing.T) {
		assert.Error(t, (&AuthConfig{JWTSecret: "x"}).ValidateConfig())
	})
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT("sup-1", "Sam Supervisor", "sam@example.com")
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "sup-1", claims.Subject)
		assert.Equal(t, "Sam Supervisor", claims.Name)
		assert.Equal(t, defaultIssuer, claims.Issuer)
	})

	t.Run("actor id required", func(t *testing.T) {
		_, err := service.GenerateJWT("", "", "")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other-key", TokenTTL: time.Hour})
		require.NoError(t, err)
		token, err := other.GenerateJWT("sup-1", "", "")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := service.GenerateJWT("sup-1", "", "")
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("token without subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})
		signed, err := token.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/whoami", middleware.RequireAuth(), func(c *gin.Context) {
		actor, ok := GetActorID(c)
		require.True(t, ok)
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"actor":     actor,
			"name":      claims.Name,
			"ctx_actor": logger.ActorFromContext(c.Request.Context()),
		})
	})

	token, err := service.GenerateJWT("coord-1", "Casey", "")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, `"ctx_actor":"coord-1"`},
		{"missing header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "Invalid token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestGetActorIDWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetActorID(c)
	assert.False(t, ok)
}
