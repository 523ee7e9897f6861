package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrInvalidRole           = errors.New("perfil inválido")
	ErrAuthDisabled          = errors.New("autenticação desabilitada")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Subject string // Portador do token (quando aplicável)
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, subject string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Subject: subject,
		Details: details,
	}
}
