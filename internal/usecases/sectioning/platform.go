package sectioning

import (
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
)

type integrationGroup struct {
	Name   string
	Status string
	Count  int
}

var integrationGroups = []integrationGroup{
	{Name: "Banks & Payment Rails", Status: "connected", Count: 12},
	{Name: "Data Warehouses", Status: "connected", Count: 3},
	{Name: "Compliance Tools", Status: "connected", Count: 2},
	{Name: "Cloud Providers", Status: "connected", Count: 1},
	{Name: "Communication", Status: "ready", Count: 0},
	{Name: "Analytics", Status: "ready", Count: 0},
}

var settingsCards = [][]string{
	{"User Management", "Manage team members and roles"},
	{"Security", "Authentication tokens and access policies"},
	{"Notifications", "Alert thresholds and delivery channels"},
	{"Appearance", "Theme and display preferences"},
	{"Data & Privacy", "Retention and export controls"},
	{"General Settings", "Platform defaults"},
}

// As seções de plataforma não dependem do snapshot
func renderIntegrations(_ *magnusdomain.DashboardSnapshot, _ Options) View {
	groups := Table{Title: "Integrations", Columns: []string{"Integration", "Status", "Connections"}}
	for _, group := range integrationGroups {
		groups.Rows = append(groups.Rows, []string{group.Name, group.Status, formatCount(group.Count)})
	}

	banks := Table{Title: "Bank Connectors", Columns: []string{"Bank", "ID", "Description", "Status"}}
	available := 0
	for _, bank := range ingesting.SupportedBanks {
		status := "available"
		if bank.ComingSoon {
			status = "coming soon"
		} else {
			available++
		}
		banks.Rows = append(banks.Rows, []string{bank.Label, bank.ID, bank.Description, status})
	}

	return View{
		Title:    "Integrations",
		Subtitle: "Connect external services and platforms",
		Metrics: []Metric{
			{Label: "Bank Connectors", Value: formatCount(available), Subtitle: "Available for live connection"},
		},
		Tables: []Table{groups, banks},
	}
}

func renderSettings(_ *magnusdomain.DashboardSnapshot, opts Options) View {
	info := opts.Settings

	refresh := "disabled"
	if info.SnapshotRefreshEnabled {
		refresh = info.SnapshotRefreshCron
	}

	auth := "disabled"
	if info.AuthEnabled {
		auth = "enabled"
	}

	return View{
		Title:    "Settings",
		Subtitle: "Platform configuration & user management",
		Metrics: []Metric{
			{Label: "API Base URL", Value: valueOrEmpty(info.APIBaseURL)},
			{Label: "Redirect Base URL", Value: valueOrEmpty(info.RedirectBaseURL)},
			{Label: "Redirect Delay", Value: info.RedirectDelay.String()},
			{Label: "Authentication", Value: auth},
			{Label: "Snapshot Refresh", Value: refresh},
			{Label: "Viewer Idle Timeout", Value: info.ViewerIdleTimeout.String()},
		},
		Tables: []Table{{Title: "Categories", Columns: []string{"Setting", "Description"}, Rows: settingsCards}},
	}
}

func valueOrEmpty(s string) string {
	if s == "" {
		return emptyValue
	}
	return s
}
