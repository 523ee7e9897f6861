package sectioning

import (
	"time"

	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/internal/config"
)

const emptyValue = "—"

// Filtros de status aceitos pela tabela de bloqueios de compliance
const (
	StatusFilterAll     = "all"
	StatusFilterBlocked = "blocked"
	StatusFilterPending = "pending"
	RuleFilterAll       = "all"
)

// Options carrega o estado local de cada seção (filtros e toggles)
type Options struct {
	ComplianceStatus string
	ComplianceRule   string
	ShowMediumRisk   bool
	Settings         SettingsInfo
}

// SettingsInfo é a parte da configuração exibida na seção de Settings
type SettingsInfo struct {
	APIBaseURL             string
	RedirectBaseURL        string
	RedirectDelay          time.Duration
	AuthEnabled            bool
	SnapshotRefreshEnabled bool
	SnapshotRefreshCron    string
	ViewerIdleTimeout      time.Duration
}

func NewSettingsInfo(cfg *config.Config) SettingsInfo {
	return SettingsInfo{
		APIBaseURL:             cfg.Magnus.BaseURL,
		RedirectBaseURL:        cfg.Ingest.RedirectBaseURL,
		RedirectDelay:          cfg.Ingest.RedirectDelay,
		AuthEnabled:            cfg.AuthEnabled(),
		SnapshotRefreshEnabled: cfg.SnapshotRefresh.Enabled,
		SnapshotRefreshCron:    cfg.SnapshotRefresh.CronSchedule,
		ViewerIdleTimeout:      cfg.Dashboard.ViewerIdleTimeout,
	}
}

type renderFunc func(snapshot *magnusdomain.DashboardSnapshot, opts Options) View

var renderers = map[Section]renderFunc{
	Overview:       renderOverview,
	Compliance:     renderCompliance,
	Fraud:          renderFraud,
	Routing:        renderRouting,
	Settlement:     renderSettlement,
	Reconciliation: renderReconciliation,
	Multibanker:    renderMultibank,
	AuditLedger:    renderAudit,
	Explainability: renderExplainability,
	Integrations:   renderIntegrations,
	Settings:       renderSettings,
}

// Render monta a view da seção. Seções desconhecidas caem em Overview e
// snapshot nil produz a view de carregamento da seção.
func Render(section Section, snapshot *magnusdomain.DashboardSnapshot, opts Options) View {
	render, ok := renderers[section]
	if !ok {
		section = Overview
		render = renderers[Overview]
	}

	view := render(snapshot, opts)
	view.Section = section
	if view.Title == "" {
		view.Title = section.Label()
	}
	return view
}

func loadingView(title, subtitle, message string) View {
	return View{
		Title:    title,
		Subtitle: subtitle,
		Notes:    []string{message},
	}
}
