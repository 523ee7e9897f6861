package ingesting

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
	"github.com/vfg2006/magnus-console/pkg/utils"
)

const (
	MaxSelectedBanks = 4
	MinAPIKeyLength  = 8

	LiveSessionPrefix = "sess_live_"

	NoBankSelectedMessage = "Select at least one bank before starting API setup."
	ShortAPIKeyMessage    = "API key must be at least 8 characters."
	InvalidAPIKeyMessage  = "Please enter a valid API key (8+ characters)."
	BanksSuccessMessage   = "Bank connections established. Loading your dashboard."
	BanksFailureFallback  = "Unable to establish bank connections. Please verify credentials and retry."
)

type Bank struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	ComingSoon  bool   `json:"coming_soon,omitempty"`
}

var SupportedBanks = []Bank{
	{ID: "hdfc", Label: "HDFC Bank", Description: "Enterprise API · OAuth or API Key"},
	{ID: "icici", Label: "ICICI Bank", Description: "API Key integration"},
	{ID: "axis", Label: "Axis Bank", Description: "OAuth sandbox available"},
	{ID: "kotak", Label: "Kotak Mahindra", Description: "API Key integration"},
	{ID: "yes", Label: "Yes Bank", Description: "Coming soon", ComingSoon: true},
}

// FindBank procura um banco conectável pelo ID
func FindBank(id string) (Bank, bool) {
	for _, bank := range SupportedBanks {
		if bank.ID == id && !bank.ComingSoon {
			return bank, true
		}
	}
	return Bank{}, false
}

type ConnectPhase string

const (
	ConnectIdle       ConnectPhase = "idle"
	ConnectSelecting  ConnectPhase = "selecting"
	ConnectConnecting ConnectPhase = "connecting"
	ConnectSuccess    ConnectPhase = "success"
	ConnectError      ConnectPhase = "error"
)

type BankLinker interface {
	ConnectBanks(ctx context.Context, credentials map[string]string) (*magnusdomain.LiveBankConnection, error)
}

type ConnectStatus struct {
	Phase            ConnectPhase                  `json:"phase"`
	Selected         []string                      `json:"selected"`
	CredentialErrors map[string]string             `json:"credential_errors,omitempty"`
	Error            string                        `json:"error,omitempty"`
	Message          string                        `json:"message,omitempty"`
	Connections      []magnusdomain.BankConnection `json:"connections,omitempty"`
	ConnectedCount   int                           `json:"connected_count"`
	LastConnectedAt  *time.Time                    `json:"last_connected_at,omitempty"`
	SessionID        string                        `json:"session_id,omitempty"`
	Redirect         *Redirect                     `json:"redirect,omitempty"`
}

// BankConnector conduz a seleção de bancos, coleta de chaves e a conexão
type BankConnector struct {
	linker     BankLinker
	redirector Redirector
	generateID func() (string, error)
	now        func() time.Time

	mu               sync.Mutex
	phase            ConnectPhase
	selected         []string
	credentials      map[string]string
	credentialErrors map[string]string
	status           ConnectStatus
	cancel           context.CancelFunc
}

func NewBankConnector(linker BankLinker, redirector Redirector) *BankConnector {
	return &BankConnector{
		linker:           linker,
		redirector:       redirector,
		generateID:       utils.GenerateID,
		now:              time.Now,
		phase:            ConnectIdle,
		credentials:      make(map[string]string),
		credentialErrors: make(map[string]string),
	}
}

// Toggle marca ou desmarca um banco; acima do limite a seleção não muda
func (b *BankConnector) Toggle(bankID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase == ConnectConnecting {
		return NewIngestError(ErrConnectInProgress, apiErrors.ErrInvalidRequest, nil, "")
	}

	if _, ok := FindBank(bankID); !ok {
		return NewIngestError(ErrUnsupportedBank, apiErrors.ErrInvalidBankSetup, nil, bankID)
	}

	delete(b.credentialErrors, bankID)

	for i, id := range b.selected {
		if id == bankID {
			b.selected = append(b.selected[:i], b.selected[i+1:]...)
			b.syncPhaseLocked()
			return nil
		}
	}

	if len(b.selected) >= MaxSelectedBanks {
		return NewIngestError(ErrBankLimitReached, apiErrors.ErrInvalidBankSetup, nil, bankID)
	}

	b.selected = append(b.selected, bankID)
	b.syncPhaseLocked()
	return nil
}

// SetCredential guarda a chave e marca o campo quando ela é curta demais
func (b *BankConnector) SetCredential(bankID, apiKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.credentials[bankID] = apiKey
	if !validAPIKey(apiKey) {
		b.credentialErrors[bankID] = ShortAPIKeyMessage
	} else {
		delete(b.credentialErrors, bankID)
	}
}

// validAPIKey conta caracteres, não bytes
func validAPIKey(apiKey string) bool {
	return utf8.RuneCountInString(apiKey) >= MinAPIKeyLength
}

func (b *BankConnector) Status() ConnectStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.statusLocked()
}

// Connect valida a seleção e faz uma única chamada de conexão para todos os bancos
func (b *BankConnector) Connect(ctx context.Context) (ConnectStatus, error) {
	b.mu.Lock()

	if b.phase == ConnectConnecting {
		b.mu.Unlock()
		return b.Status(), NewIngestError(ErrConnectInProgress, apiErrors.ErrInvalidRequest, nil, "")
	}

	if len(b.selected) == 0 {
		b.phase = ConnectError
		b.status.Error = NoBankSelectedMessage
		b.mu.Unlock()
		return b.Status(), NewIngestError(ErrNoBankSelected, apiErrors.ErrInvalidBankSetup, []string{NoBankSelectedMessage}, "")
	}

	invalid := make(map[string]string)
	for _, bankID := range b.selected {
		if !validAPIKey(b.credentials[bankID]) {
			invalid[bankID] = InvalidAPIKeyMessage
			b.credentialErrors[bankID] = InvalidAPIKeyMessage
		}
	}
	if len(invalid) > 0 {
		b.mu.Unlock()
		return b.Status(), &IngestError{
			Err:    ErrInvalidCredential,
			Code:   apiErrors.ErrInvalidBankSetup,
			Fields: invalid,
		}
	}

	credentials := make(map[string]string, len(b.selected))
	for _, bankID := range b.selected {
		credentials[bankID] = b.credentials[bankID]
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	b.cancel = cancel
	b.phase = ConnectConnecting
	b.status.Error = ""
	b.mu.Unlock()

	connection, err := b.linker.ConnectBanks(ctx, credentials)
	if err != nil {
		if ctx.Err() != nil {
			b.mu.Lock()
			b.cancel = nil
			b.syncPhaseLocked()
			b.mu.Unlock()
			return b.Status(), NewIngestError(ErrConnectCancelled, apiErrors.ErrInvalidRequest, nil, "")
		}
		return b.fail(err)
	}

	suffix, err := b.generateID()
	if err != nil {
		logrus.WithError(err).Error("ingest: falha ao gerar ID da sessão live")
		return b.fail(err)
	}

	connectedAt := b.now()
	sessionID := LiveSessionPrefix + suffix

	b.mu.Lock()
	b.cancel = nil
	b.phase = ConnectSuccess
	b.status = ConnectStatus{
		Message:         BanksSuccessMessage,
		Connections:     connection.Connections,
		ConnectedCount:  len(b.selected),
		LastConnectedAt: &connectedAt,
		SessionID:       sessionID,
		Redirect:        b.redirector.For(sessionID),
	}
	b.mu.Unlock()

	return b.Status(), nil
}

// DismissError fecha o modal de erro mantendo a seleção
func (b *BankConnector) DismissError() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != ConnectError {
		return
	}
	b.status.Error = ""
	b.syncPhaseLocked()
}

// Reset cancela a conexão em andamento e limpa seleção e credenciais
func (b *BankConnector) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}

	b.phase = ConnectIdle
	b.selected = nil
	b.credentials = make(map[string]string)
	b.credentialErrors = make(map[string]string)
	b.status = ConnectStatus{}
}

func (b *BankConnector) fail(err error) (ConnectStatus, error) {
	message := BanksFailureFallback
	var respErr *magnusdomain.ResponseError
	if errors.As(err, &respErr) {
		message = respErr.Error()
	}

	b.mu.Lock()
	b.cancel = nil
	b.phase = ConnectError
	b.status.Error = message
	b.mu.Unlock()

	return b.Status(), &IngestError{
		Err:      ErrConnectFailed,
		Code:     apiErrors.ErrExternalService,
		Messages: []string{message},
	}
}

func (b *BankConnector) syncPhaseLocked() {
	if len(b.selected) == 0 {
		b.phase = ConnectIdle
		return
	}
	b.phase = ConnectSelecting
}

func (b *BankConnector) statusLocked() ConnectStatus {
	status := b.status
	status.Phase = b.phase
	status.Selected = append([]string(nil), b.selected...)

	if len(b.credentialErrors) > 0 {
		status.CredentialErrors = make(map[string]string, len(b.credentialErrors))
		for bankID, message := range b.credentialErrors {
			status.CredentialErrors[bankID] = message
		}
	}

	return status
}
