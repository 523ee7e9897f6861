package ingesting

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/magnus-console/internal/config"
)

// Redirect indica para onde o usuário vai depois de uma ingestão bem sucedida
type Redirect struct {
	SessionID string        `json:"session_id"`
	URL       string        `json:"url"`
	After     time.Duration `json:"-"`
	AfterMS   int64         `json:"after_ms"`
}

// Wait aguarda o atraso do redirecionamento respeitando o ctx
func (r Redirect) Wait(ctx context.Context) error {
	timer := time.NewTimer(r.After)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Redirector struct {
	baseURL string
	delay   time.Duration
}

func NewRedirector(cfg *config.Config) Redirector {
	return Redirector{
		baseURL: strings.TrimSuffix(strings.TrimSpace(cfg.Ingest.RedirectBaseURL), "/"),
		delay:   cfg.Ingest.RedirectDelay,
	}
}

func (r Redirector) For(sessionID string) *Redirect {
	return &Redirect{
		SessionID: sessionID,
		URL:       r.baseURL + "/dashboard?session=" + url.QueryEscape(sessionID),
		After:     r.delay,
		AfterMS:   r.delay.Milliseconds(),
	}
}
