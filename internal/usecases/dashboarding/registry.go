package dashboarding

import (
	"sync"
	"time"
)

type viewer struct {
	provider *Provider
	lastSeen time.Time
}

// Registry guarda um Provider por visitante do console
type Registry struct {
	fetcher Fetcher
	now     func() time.Time

	mu      sync.Mutex
	viewers map[string]*viewer
}

func NewRegistry(fetcher Fetcher) *Registry {
	return &Registry{
		fetcher: fetcher,
		now:     time.Now,
		viewers: make(map[string]*viewer),
	}
}

// Get retorna o provider do visitante, criando-o na primeira visita
func (r *Registry) Get(viewerID string) *Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.viewers[viewerID]
	if !ok {
		v = &viewer{provider: NewProvider(r.fetcher)}
		r.viewers[viewerID] = v
	}
	v.lastSeen = r.now()

	return v.provider
}

func (r *Registry) Lookup(viewerID string) (*Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.viewers[viewerID]
	if !ok {
		return nil, false
	}
	return v.provider, true
}

// Sweep encerra e remove os providers sem acesso há mais de idle
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idle <= 0 {
		return 0
	}

	cutoff := r.now().Add(-idle)
	removed := 0
	for id, v := range r.viewers {
		if v.lastSeen.Before(cutoff) {
			v.provider.Close()
			delete(r.viewers, id)
			removed++
		}
	}

	return removed
}

// RefreshAll dispara Refresh em todo provider com sessão e retorna quantos foram disparados
func (r *Registry) RefreshAll() int {
	r.mu.Lock()
	providers := make([]*Provider, 0, len(r.viewers))
	for _, v := range r.viewers {
		providers = append(providers, v.provider)
	}
	r.mu.Unlock()

	refreshed := 0
	for _, provider := range providers {
		if err := provider.Refresh(); err == nil {
			refreshed++
		}
	}

	return refreshed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.viewers)
}

// Close encerra todos os providers
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, v := range r.viewers {
		v.provider.Close()
		delete(r.viewers, id)
	}
}
