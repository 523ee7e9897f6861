package magnusdomain

import "fmt"

// ErrorResponse representa o corpo de erro da API de ingestão ({"detail": "..."})
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ResponseError é retornado quando a API da Magnus responde com status fora de 2xx.
// A mensagem já vem pronta para ser exibida ao usuário.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("magnus respondeu com status %d", e.StatusCode)
	}
	return e.Message
}

// IsNotFound verifica se a sessão pedida não existe na API
func (e *ResponseError) IsNotFound() bool {
	return e.StatusCode == 404
}
