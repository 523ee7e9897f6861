package dashboarding

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

// GenericLoadError é exibido quando a falha não trouxe mensagem da API (rede, JSON inválido)
const GenericLoadError = "Failed to load dashboard data"

type Fetcher interface {
	GetDashboard(ctx context.Context, sessionID string) (*magnusdomain.DashboardSnapshot, error)
}

// State é a visão imutável do provider em um instante
type State struct {
	SessionID string                          `json:"session_id,omitempty"`
	Data      *magnusdomain.DashboardSnapshot `json:"data"`
	Loading   bool                            `json:"loading"`
	Error     string                          `json:"error,omitempty"`
	// Generation identifica a busca que produziu o estado
	Generation uint64 `json:"-"`
}

// Provider mantém o snapshot do dashboard de uma única sessão corrente.
// Apenas a busca mais recente pode alterar o estado; resultados de buscas
// substituídas (troca de sessão, refresh ou Close) são descartados.
type Provider struct {
	fetcher Fetcher

	mu           sync.Mutex
	sessionID    string
	refreshCount uint64
	generation   uint64
	cancel       context.CancelFunc
	state        State
	pending      bool
	settled      chan struct{}
	subscribers  []chan State
	closed       bool
}

func NewProvider(fetcher Fetcher) *Provider {
	settled := make(chan struct{})
	close(settled)

	return &Provider{
		fetcher: fetcher,
		settled: settled,
	}
}

// SetSession troca a sessão corrente. Sessão vazia limpa o estado sem buscar;
// repetir a sessão atual não dispara nova busca.
func (p *Provider) SetSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	if sessionID != "" && sessionID == p.sessionID {
		return
	}

	p.sessionID = sessionID

	if sessionID == "" {
		p.stopLocked()
		p.generation++
		p.state = State{Generation: p.generation}
		p.settleLocked()
		p.publishLocked()
		return
	}

	p.startLocked()
}

// Refresh busca novamente a sessão corrente. Sem sessão não faz nada.
func (p *Provider) Refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrProviderClosed
	}

	if p.sessionID == "" {
		return ErrNoSession
	}

	p.refreshCount++
	p.startLocked()
	return nil
}

// SessionID retorna a sessão corrente
func (p *Provider) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionID
}

// RefreshCount retorna quantas vezes Refresh foi aceito
func (p *Provider) RefreshCount() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshCount
}

func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Wait bloqueia até a busca mais recente terminar ou o ctx expirar
func (p *Provider) Wait(ctx context.Context) (State, error) {
	p.mu.Lock()
	settled := p.settled
	p.mu.Unlock()

	select {
	case <-settled:
		return p.State(), nil
	case <-ctx.Done():
		return p.State(), ctx.Err()
	}
}

// Subscribe entrega cada mudança de estado. O canal guarda só o último estado
// não lido e é fechado por Close ou pela função de cancelamento.
func (p *Provider) Subscribe() (<-chan State, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan State, 1)
	if p.closed {
		close(ch)
		return ch, func() {}
	}

	ch <- p.state
	p.subscribers = append(p.subscribers, ch)

	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		for i, sub := range p.subscribers {
			if sub == ch {
				p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
				close(ch)
				return
			}
		}
	}
}

// Close cancela a busca em andamento e libera os inscritos
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.stopLocked()
	p.generation++
	p.closed = true
	p.state.Loading = false
	p.settleLocked()

	for _, sub := range p.subscribers {
		close(sub)
	}
	p.subscribers = nil
}

func (p *Provider) startLocked() {
	p.stopLocked()

	p.generation++
	generation := p.generation
	sessionID := p.sessionID

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.state.SessionID = sessionID
	p.state.Loading = true
	p.state.Error = ""
	p.state.Generation = generation

	if !p.pending {
		p.settled = make(chan struct{})
		p.pending = true
	}

	p.publishLocked()

	go p.fetch(ctx, generation, sessionID)
}

func (p *Provider) fetch(ctx context.Context, generation uint64, sessionID string) {
	snapshot, err := p.fetcher.GetDashboard(ctx, sessionID)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || generation != p.generation {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"generation": generation,
		}).Debug("dashboard: resultado obsoleto descartado")
		return
	}

	p.stopLocked()

	if err != nil {
		p.state.Data = nil
		p.state.Error = errorMessage(err)
	} else {
		p.state.Data = snapshot
		p.state.Error = ""
	}
	p.state.Loading = false

	p.settleLocked()
	p.publishLocked()
}

func (p *Provider) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Provider) settleLocked() {
	if p.pending {
		close(p.settled)
		p.pending = false
	}
}

func (p *Provider) publishLocked() {
	for _, sub := range p.subscribers {
		select {
		case sub <- p.state:
		default:
			select {
			case <-sub:
			default:
			}
			sub <- p.state
		}
	}
}

func errorMessage(err error) string {
	var respErr *magnusdomain.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Error()
	}
	return GenericLoadError
}
