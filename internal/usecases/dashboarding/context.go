package dashboarding

import "context"

type providerKey struct{}

// WithProvider anexa o provider do visitante ao contexto da requisição
func WithProvider(ctx context.Context, provider *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, provider)
}

// FromContext recupera o provider; fora do escopo de um provider retorna ErrNoProvider
func FromContext(ctx context.Context) (*Provider, error) {
	provider, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || provider == nil {
		return nil, ErrNoProvider
	}
	return provider, nil
}
