package sectioning

import (
	"fmt"
	"sort"
	"strings"

	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

func renderOverview(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	if snapshot == nil {
		return loadingView("Overview", "", "Loading overview metrics…")
	}

	overview := snapshot.Overview
	metrics := overview.Metrics

	view := View{
		Title: "Overview",
		Subtitle: fmt.Sprintf("Session ID: %s · Source: %s · Records: %s",
			snapshot.Session.ID,
			strings.ToUpper(string(snapshot.Session.Source)),
			formatCount(snapshot.Session.RecordsIngested)),
		Metrics: []Metric{
			{Label: "Total Volume", Value: formatMoney(metrics.TotalVolume), Subtitle: fmt.Sprintf("%s transactions", formatCount(metrics.TotalTransactions))},
			{Label: "Unique Vendors", Value: formatCount(metrics.UniqueVendors), Subtitle: "Distinct vendor IDs"},
			{Label: "Payment Methods", Value: formatCount(len(overview.PaymentMethods)), Subtitle: "Active rails in this session"},
			{Label: "Top Currency", Value: topCurrency(metrics.CurrencyBreakdown), Subtitle: "Currency breakdown"},
		},
	}

	methods := Table{Title: "Payment Methods", Columns: []string{"Method", "Count", "Amount"}}
	for _, method := range overview.PaymentMethods {
		methods.Rows = append(methods.Rows, []string{method.Method, formatCount(method.Count), formatMoney(method.Amount)})
	}

	recent := Table{Title: "Recent Transactions", Columns: []string{"ID", "Vendor", "Amount", "Method", "Bank", "Date"}}
	for _, tx := range overview.RecentTransactions {
		recent.Rows = append(recent.Rows, []string{tx.ID, tx.Vendor, formatMoney(tx.Amount), tx.PaymentMethod, tx.Bank, tx.Date})
	}

	view.Tables = []Table{methods, recent}
	return view
}

// topCurrency devolve a moeda com mais transações; empate resolve pela ordem alfabética
func topCurrency(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return emptyValue
	}

	currencies := make([]string, 0, len(breakdown))
	for currency := range breakdown {
		currencies = append(currencies, currency)
	}
	sort.Slice(currencies, func(i, j int) bool {
		ci, cj := breakdown[currencies[i]], breakdown[currencies[j]]
		if ci != cj {
			return ci > cj
		}
		return currencies[i] < currencies[j]
	})

	top := currencies[0]
	return fmt.Sprintf("%s (%s)", top, formatCount(breakdown[top]))
}
