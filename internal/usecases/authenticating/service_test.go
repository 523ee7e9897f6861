package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	cfg := &config.Config{Auth: config.Auth{Secret: secret}}
	return &Service{cfg: cfg, now: time.Now}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService("segredo-de-teste")

	token, err := service.GenerateToken("ops@magnus", domain.RoleOperator, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@magnus", claims.Subject)
	assert.Equal(t, domain.RoleOperator, claims.Role)
}

func TestGenerateToken_Errors(t *testing.T) {
	t.Run("Sem segredo", func(t *testing.T) {
		service := newTestService("")
		assert.False(t, service.Enabled())

		_, err := service.GenerateToken("x", domain.RoleViewer, time.Hour)
		assert.True(t, errors.Is(err, ErrAuthDisabled))
	})

	t.Run("Perfil desconhecido", func(t *testing.T) {
		service := newTestService("segredo")

		_, err := service.GenerateToken("x", domain.Role("admin"), time.Hour)
		assert.True(t, errors.Is(err, ErrInvalidRole))
	})
}

func TestValidateToken(t *testing.T) {
	service := newTestService("segredo-de-teste")

	sign := func(method jwt.SigningMethod, key any, claims domain.Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	valid := domain.Claims{
		Role: domain.RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "viewer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	badRole := valid
	badRole.Role = "root"

	tests := []struct {
		name     string
		token    string
		wantErr  error
		wantCode string
	}{
		{name: "Token válido", token: sign(jwt.SigningMethodHS256, []byte("segredo-de-teste"), valid)},
		{name: "Segredo diferente", token: sign(jwt.SigningMethodHS256, []byte("outro"), valid), wantErr: ErrInvalidToken, wantCode: apiErrors.ErrInvalidToken},
		{name: "Token expirado", token: sign(jwt.SigningMethodHS256, []byte("segredo-de-teste"), expired), wantErr: ErrExpiredToken, wantCode: apiErrors.ErrExpiredToken},
		{name: "Perfil inválido", token: sign(jwt.SigningMethodHS256, []byte("segredo-de-teste"), badRole), wantErr: ErrInvalidRole, wantCode: apiErrors.ErrInvalidToken},
		{name: "Lixo", token: "not-a-token", wantErr: ErrInvalidToken, wantCode: apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "viewer", claims.Subject)
				return
			}

			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.wantErr))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.True(t, IsAuthorizationError(err) || errors.Is(err, ErrInvalidRole))
		})
	}
}
