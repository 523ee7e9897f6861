package sectioning

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

func renderSettlement(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	const title, subtitle = "Real-Time Settlement Tracking", "Live payment status & settlement monitoring"
	if snapshot == nil {
		return loadingView(title, subtitle, "Loading settlement status…")
	}

	settlement := snapshot.Settlement
	view := View{Title: title, Subtitle: subtitle}

	statuses := make([]string, 0, len(settlement.Counts))
	for status := range settlement.Counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		view.Metrics = append(view.Metrics, Metric{Label: titleCase(status), Value: formatCount(settlement.Counts[status])})
	}

	total := decimal.Zero
	timeline := Table{Title: "Timeline", Columns: []string{"ID", "Vendor", "Amount", "Status"}}
	for _, item := range settlement.Timeline {
		total = total.Add(item.Amount)
		timeline.Rows = append(timeline.Rows, []string{item.ID, item.Vendor, formatMoney(item.Amount), item.Status})
	}
	view.Metrics = append(view.Metrics, Metric{Label: "Timeline Volume", Value: formatMoney(total)})
	view.Tables = []Table{timeline}

	return view
}

func renderReconciliation(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	const title, subtitle = "Reconciliation Engine", "Three-way matching & discrepancy resolution"
	if snapshot == nil {
		return loadingView(title, subtitle, "Loading reconciliation matches…")
	}

	matches := snapshot.Reconciliation.Matches
	view := View{Title: title, Subtitle: subtitle}

	counts := make(map[string]int)
	var confidence float64
	table := Table{Title: "Matches", Columns: []string{"Transaction", "Amount", "Status", "Confidence"}}
	for _, match := range matches {
		counts[match.OverallStatus]++
		confidence += match.ConfidenceScore
		table.Rows = append(table.Rows, []string{match.TransactionID, formatMoney(match.Amount), match.OverallStatus, formatPercent(match.ConfidenceScore)})
	}

	view.Metrics = append(view.Metrics, Metric{Label: "Matches", Value: formatCount(len(matches))})
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		view.Metrics = append(view.Metrics, Metric{Label: titleCase(status), Value: formatCount(counts[status])})
	}

	avg := emptyValue
	if len(matches) > 0 {
		avg = formatPercent(confidence / float64(len(matches)))
	}
	view.Metrics = append(view.Metrics, Metric{Label: "Avg Confidence", Value: avg})
	view.Tables = []Table{table}

	return view
}

func renderMultibank(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	const title, subtitle = "Unified Multi-Bank Dashboard", "Consolidated view across all connected banks"
	if snapshot == nil {
		return loadingView(title, subtitle, "Loading bank balances…")
	}

	banks := snapshot.Multibank.Banks
	balance, transactions := TotalBalance(banks)

	table := Table{Title: "Banks", Columns: []string{"Bank", "Balance", "Transactions"}}
	for _, bank := range banks {
		table.Rows = append(table.Rows, []string{bank.BankName, formatMoney(bank.Balance), formatCount(bank.Transactions)})
	}

	return View{
		Title:    title,
		Subtitle: subtitle,
		Metrics: []Metric{
			{Label: "Connected Banks", Value: formatCount(len(banks))},
			{Label: "Total Balance", Value: formatMoney(balance)},
			{Label: "Transactions", Value: formatCount(transactions)},
		},
		Tables: []Table{table},
	}
}

// TotalBalance soma saldos em decimal para não acumular erro de ponto flutuante
func TotalBalance(banks []magnusdomain.BankSummary) (decimal.Decimal, int) {
	balance := decimal.Zero
	transactions := 0
	for _, bank := range banks {
		balance = balance.Add(bank.Balance)
		transactions += bank.Transactions
	}
	return balance, transactions
}

func renderAudit(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	const title, subtitle = "Immutable Audit Ledger", "Complete transaction audit trail & compliance logs"
	if snapshot == nil {
		return loadingView(title, subtitle, "Loading audit trail…")
	}

	entries := snapshot.Audit.Entries
	steps := 0
	table := Table{Title: "Entries", Columns: []string{"Transaction", "Vendor", "Amount", "Trail"}}
	for _, entry := range entries {
		actions := make([]string, 0, len(entry.Steps))
		for _, step := range entry.Steps {
			actions = append(actions, step.Action)
		}
		steps += len(entry.Steps)
		table.Rows = append(table.Rows, []string{entry.TransactionID, entry.Vendor, formatMoney(entry.Amount), strings.Join(actions, " > ")})
	}

	return View{
		Title:    title,
		Subtitle: subtitle,
		Metrics: []Metric{
			{Label: "Audit Entries", Value: formatCount(len(entries))},
			{Label: "Recorded Steps", Value: formatCount(steps)},
		},
		Tables: []Table{table},
	}
}

func renderExplainability(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	const title, subtitle = "Explainability Agent", "AI-powered reasoning & decision transparency"
	if snapshot == nil {
		return loadingView(title, subtitle, "Loading insights…")
	}

	insights := snapshot.Explainability.Insights
	var confidence float64
	table := Table{Title: "Insights", Columns: []string{"Query", "Response", "Confidence"}}
	for _, insight := range insights {
		confidence += insight.Confidence
		table.Rows = append(table.Rows, []string{insight.Query, insight.Response, formatPercent(insight.Confidence)})
	}

	avg := emptyValue
	if len(insights) > 0 {
		avg = formatPercent(confidence / float64(len(insights)))
	}

	return View{
		Title:    title,
		Subtitle: subtitle,
		Metrics: []Metric{
			{Label: "Insights", Value: formatCount(len(insights))},
			{Label: "Avg Confidence", Value: avg},
		},
		Tables: []Table{table},
	}
}

func titleCase(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", " ")
	if s == "" {
		return emptyValue
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
