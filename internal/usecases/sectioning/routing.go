package sectioning

import (
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

const (
	routingTitle    = "Smart Route Optimizer"
	routingSubtitle = "Intelligent route selection driven by live fee, speed, and reliability signals"
)

func renderRouting(snapshot *magnusdomain.DashboardSnapshot, _ Options) View {
	if snapshot == nil {
		return loadingView(routingTitle, routingSubtitle, "Loading routing analytics…")
	}

	routing := snapshot.Routing
	metrics := routing.Metrics

	view := View{
		Title:    routingTitle,
		Subtitle: routingSubtitle,
		Metrics: []Metric{
			{Label: "Transactions Routed", Value: formatCount(metrics.TransactionsRouted)},
			{Label: "Avg Fee Saved", Value: formatMoney(metrics.AvgFeeSaved)},
			{Label: "Total Cost Optimized", Value: formatMoney(metrics.TotalCostOptimized)},
			{Label: "Avg Success Probability", Value: formatPercent(metrics.AvgSuccessProbability)},
		},
	}

	distribution := Table{Title: "Route Distribution", Columns: []string{"Method", "Count", "Amount", "Fee", "Share"}}
	for _, route := range routing.Distribution {
		distribution.Rows = append(distribution.Rows, []string{route.Method, formatCount(route.Count), formatMoney(route.Amount), formatMoney(route.Fee), formatPercent(route.Percentage)})
	}

	recommendations := Table{Title: "Recommendations", Columns: []string{"Transaction", "Amount", "Route", "Success", "Fee", "Reason"}}
	for _, rec := range routing.Recommendations {
		recommendations.Rows = append(recommendations.Rows, []string{rec.TransactionID, formatMoney(rec.Amount), rec.SelectedRoute, formatPercent(rec.SuccessProb), formatMoney(rec.Fee), rec.Reason})
	}

	rails := Table{Title: "Rail Performance", Columns: []string{"Rail", "Success Rate", "Fee", "Avg Time", "Queue", "Updated"}}
	for _, rail := range routing.BankPerformance {
		rails.Rows = append(rails.Rows, []string{rail.Rail, formatPercent(rail.SuccessRate), rail.Fee, rail.AvgTime, formatCount(rail.QueueLength), rail.LastUpdated})
	}

	decisions := Table{Title: "Decisions", Columns: []string{"Time", "Transaction", "Decision", "Status", "Score"}}
	for _, decision := range routing.Decisions {
		decisions.Rows = append(decisions.Rows, []string{decision.Timestamp, decision.Transaction, decision.Decision, decision.Status, formatScore(decision.Score)})
	}

	view.Tables = []Table{distribution, recommendations, rails, decisions}
	return view
}
