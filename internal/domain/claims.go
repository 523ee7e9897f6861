package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role define o que o portador do token pode fazer no console
type Role string

const (
	// RoleOperator pode ingerir dados e disparar sincronizações
	RoleOperator Role = "operator"
	// RoleViewer apenas consulta o dashboard
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleOperator || r == RoleViewer
}

type Claims struct {
	Name string `json:"name,omitempty"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}
