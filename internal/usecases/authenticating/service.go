package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

const DefaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Enabled() bool
	GenerateToken(subject string, role domain.Role, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// Enabled indica se existe segredo configurado; sem ele as rotas ficam abertas
func (s *Service) Enabled() bool {
	return s.cfg.AuthEnabled()
}

func (s *Service) GenerateToken(subject string, role domain.Role, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrInvalidRequest, subject, "AUTH_SECRET não configurado")
	}

	if !role.Valid() {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, subject, string(role))
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "", err.Error())
		}
		logrus.WithError(err).Debug("token rejeitado")
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "", err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "", "")
	}

	if !claims.Role.Valid() {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidToken, claims.Subject, string(claims.Role))
	}

	return claims, nil
}
