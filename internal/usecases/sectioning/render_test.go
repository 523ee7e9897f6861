package sectioning

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func renderText(t *testing.T, view View) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, view.WriteText(&buf))
	return buf.Bytes()
}

func testSnapshot() *magnusdomain.DashboardSnapshot {
	return &magnusdomain.DashboardSnapshot{
		SessionID:   "S1",
		GeneratedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Session: magnusdomain.Session{
			ID:              "S1",
			Source:          magnusdomain.SessionSourceCSV,
			RecordsIngested: 3,
		},
		Overview: magnusdomain.OverviewPayload{
			Metrics: magnusdomain.OverviewMetrics{
				TotalTransactions: 3,
				TotalVolume:       decimal.RequireFromString("1500.5"),
				UniqueVendors:     2,
				CurrencyBreakdown: map[string]int{"INR": 2, "USD": 1},
			},
			PaymentMethods: []magnusdomain.OverviewPaymentMethod{
				{Method: "NEFT", Count: 2, Amount: decimal.RequireFromString("1000")},
				{Method: "IMPS", Count: 1, Amount: decimal.RequireFromString("500.5")},
			},
			RecentTransactions: []magnusdomain.OverviewRecentTransaction{
				{ID: "T1", Vendor: "Acme Corp", Amount: decimal.RequireFromString("1000"), PaymentMethod: "NEFT", Bank: "HDFC", Date: "2025-01-15"},
			},
		},
		Compliance: magnusdomain.CompliancePayload{
			BlockedTransactions: []magnusdomain.ComplianceBlockedTransaction{
				{ID: "B1", VendorName: "Acme", RuleViolated: "GST", Status: "blocked"},
				{ID: "B2", VendorName: "Beta", RuleViolated: "KYC", Status: "pending"},
				{ID: "B3", VendorName: "Gama", RuleViolated: "GST", Status: "pending"},
			},
		},
		Fraud: magnusdomain.FraudPayload{
			HighRisk:   []magnusdomain.FraudTransaction{{ID: "F1", RiskScore: 0.92}},
			MediumRisk: []magnusdomain.FraudTransaction{{ID: "F2", RiskScore: 0.5}, {ID: "F3", RiskScore: 0.45}},
		},
		Multibank: magnusdomain.MultibankPayload{
			Banks: []magnusdomain.BankSummary{
				{BankName: "HDFC", Balance: decimal.RequireFromString("0.1"), Transactions: 2},
				{BankName: "ICICI", Balance: decimal.RequireFromString("0.2"), Transactions: 3},
			},
		},
	}
}

func TestRender_Golden(t *testing.T) {
	g := newGoldie(t)

	settings := Options{Settings: SettingsInfo{
		APIBaseURL:             "http://127.0.0.1:8000/api/v1",
		RedirectBaseURL:        "http://localhost:3000",
		RedirectDelay:          2200 * time.Millisecond,
		SnapshotRefreshEnabled: true,
		SnapshotRefreshCron:    "*/5 * * * *",
		ViewerIdleTimeout:      30 * time.Minute,
	}}

	tests := []struct {
		golden   string
		section  Section
		snapshot *magnusdomain.DashboardSnapshot
		opts     Options
	}{
		{golden: "overview", section: Overview, snapshot: testSnapshot()},
		{golden: "overview_loading", section: Overview},
		{golden: "settings", section: Settings, opts: settings},
		{golden: "integrations", section: Integrations},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			view := Render(tt.section, tt.snapshot, tt.opts)
			g.Assert(t, tt.golden, renderText(t, view))
		})
	}
}

func TestRender_UnknownSectionFallsBackToOverview(t *testing.T) {
	view := Render(Section("nope"), testSnapshot(), Options{})
	assert.Equal(t, Overview, view.Section)
	assert.Equal(t, "Overview", view.Title)
}

func TestRender_LoadingWithoutSnapshot(t *testing.T) {
	tests := map[Section]string{
		Compliance: "Loading compliance insights…",
		Fraud:      "Loading fraud intelligence…",
		Routing:    "Loading routing analytics…",
	}

	for section, note := range tests {
		t.Run(string(section), func(t *testing.T) {
			view := Render(section, nil, Options{})
			assert.Equal(t, section, view.Section)
			assert.Equal(t, []string{note}, view.Notes)
			assert.Empty(t, view.Tables)
		})
	}
}

func TestParseSection(t *testing.T) {
	assert.Equal(t, Fraud, ParseSection("fraud"))
	assert.Equal(t, AuditLedger, ParseSection(" Audit-Ledger "))
	assert.Equal(t, Overview, ParseSection(""))
	assert.Equal(t, Overview, ParseSection("unknown"))
}

func TestMenuByCategory(t *testing.T) {
	grouped := MenuByCategory()
	require.Len(t, grouped[CategoryOthers], 2)
	assert.Equal(t, Integrations, grouped[CategoryOthers][0].ID)
	assert.Equal(t, Overview, grouped[CategoryMain][0].ID)
	assert.Equal(t, "Multi-Bank", Multibanker.Label())
}

func TestTopCurrency(t *testing.T) {
	assert.Equal(t, "—", topCurrency(nil))
	assert.Equal(t, "INR (2)", topCurrency(map[string]int{"USD": 1, "INR": 2}))
	assert.Equal(t, "EUR (2)", topCurrency(map[string]int{"USD": 2, "EUR": 2}))
}

func TestFilterBlocked(t *testing.T) {
	blocked := testSnapshot().Compliance.BlockedTransactions

	tests := []struct {
		name   string
		status string
		rule   string
		want   []string
	}{
		{name: "Sem filtro", status: StatusFilterAll, rule: RuleFilterAll, want: []string{"B1", "B2", "B3"}},
		{name: "Somente pendentes", status: StatusFilterPending, rule: RuleFilterAll, want: []string{"B2", "B3"}},
		{name: "Pendentes de GST", status: StatusFilterPending, rule: "GST", want: []string{"B3"}},
		{name: "Regra inexistente", status: StatusFilterAll, rule: "FEMA", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, tx := range FilterBlocked(blocked, tt.status, tt.rule) {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRenderCompliance_FilterNotes(t *testing.T) {
	view := Render(Compliance, testSnapshot(), Options{ComplianceStatus: "BLOCKED"})

	assert.Equal(t, []string{"Filters: status=blocked rule=all", "Rules: GST, KYC"}, view.Notes)
	require.Len(t, view.Tables, 4)
	require.Len(t, view.Tables[1].Rows, 1)
	assert.Equal(t, "B1", view.Tables[1].Rows[0][0])
}

func TestRenderFraud_MediumRiskToggle(t *testing.T) {
	hidden := Render(Fraud, testSnapshot(), Options{})
	assert.Equal(t, []string{"2 medium risk transactions hidden"}, hidden.Notes)
	for _, table := range hidden.Tables {
		assert.NotEqual(t, "Medium Risk Transactions", table.Title)
	}

	shown := Render(Fraud, testSnapshot(), Options{ShowMediumRisk: true})
	assert.Empty(t, shown.Notes)

	var found bool
	for _, table := range shown.Tables {
		if table.Title == "Medium Risk Transactions" {
			found = true
			assert.Len(t, table.Rows, 2)
		}
	}
	assert.True(t, found)
}

func TestTotalBalance(t *testing.T) {
	balance, transactions := TotalBalance(testSnapshot().Multibank.Banks)
	assert.True(t, decimal.RequireFromString("0.3").Equal(balance))
	assert.Equal(t, 5, transactions)
}

func TestBuildHeader(t *testing.T) {
	header := BuildHeader(nil)
	assert.Equal(t, "csv", header.SessionType)
	assert.Nil(t, header.LastUpdated)

	snapshot := testSnapshot()
	snapshot.Session.Source = magnusdomain.SessionSourceLive
	header = BuildHeader(snapshot)
	assert.Equal(t, "S1", header.SessionID)
	assert.Equal(t, "live", header.SessionType)
	assert.Equal(t, 3, header.TransactionCount)
	require.NotNil(t, header.LastUpdated)
	assert.True(t, snapshot.GeneratedAt.Equal(*header.LastUpdated))
}
