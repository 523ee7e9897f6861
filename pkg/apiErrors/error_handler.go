package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro do console
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrUnsupportedFile     = "VAL_004" // Arquivo não é CSV ou excede o limite
	ErrMissingColumns      = "VAL_005" // Cabeçalho do CSV sem colunas obrigatórias
	ErrInvalidBankSetup    = "VAL_006" // Seleção de bancos ou credenciais inválidas

	// Erros de roteamento (4000-4999)
	ErrNotFound         = "RTE_001" // Rota ou recurso inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro na API da Magnus
	ErrCommunication   = "SRV_004" // Erro de comunicação
	ErrTooManyRequests = "SRV_005" // Limite de requisições excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUnsupportedFile:       http.StatusUnsupportedMediaType,
	ErrMissingColumns:        http.StatusUnprocessableEntity,
	ErrInvalidBankSetup:      http.StatusUnprocessableEntity,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrTooManyRequests:       http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
