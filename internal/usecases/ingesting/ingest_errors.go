package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrNoFile            = errors.New("nenhum arquivo selecionado")
	ErrUnsupportedFile   = errors.New("arquivo não suportado")
	ErrMissingColumns    = errors.New("colunas obrigatórias ausentes")
	ErrUploadInProgress  = errors.New("upload já em andamento")
	ErrUploadCancelled   = errors.New("upload cancelado")
	ErrUploadFailed      = errors.New("falha no upload do CSV")
	ErrNoBankSelected    = errors.New("nenhum banco selecionado")
	ErrUnsupportedBank   = errors.New("banco não suportado")
	ErrBankLimitReached  = errors.New("limite de bancos atingido")
	ErrInvalidCredential = errors.New("credenciais inválidas")
	ErrConnectInProgress = errors.New("conexão já em andamento")
	ErrConnectCancelled  = errors.New("conexão cancelada")
	ErrConnectFailed     = errors.New("falha ao conectar bancos")
	ErrGenerateID        = errors.New("erro ao gerar ID da sessão")
)

// IngestError descreve uma falha de ingestão já pronta para ser exibida
type IngestError struct {
	Err      error             // Erro base
	Code     string            // Código de erro para API
	Messages []string          // Mensagens exibidas ao usuário, uma por problema
	Fields   map[string]string // Erros por banco
	Details  string            // Detalhes adicionais
}

func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func NewIngestError(err error, code string, messages []string, details string) *IngestError {
	return &IngestError{
		Err:      err,
		Code:     code,
		Messages: messages,
		Details:  details,
	}
}
