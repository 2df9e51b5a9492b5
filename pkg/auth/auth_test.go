package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresKey(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("admin", "ROLE_ADMIN", "ROLE_USER")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, claims.Authorities())

	other, err := NewJWTService("outro-segredo", time.Hour)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	svc, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)
	svc.expiration = -time.Minute

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)
	token, err := svc.GenerateToken("usuario", "ROLE_USER")
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuthMiddleware(svc))
	router.GET("/protegido", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserLoginKey))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sem cabeçalho", "", http.StatusUnauthorized},
		{"formato inválido", "Token " + token, http.StatusUnauthorized},
		{"token inválido", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"token válido", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "usuario", w.Body.String())
			}
		})
	}
}
