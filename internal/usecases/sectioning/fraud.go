package sectioning

import (
	"fmt"

	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

const (
	fraudTitle    = "Fraud Detection"
	fraudSubtitle = "Anomaly detection & risk assessment"
)

var riskColumns = []string{"ID", "Vendor", "Amount", "Score", "Anomaly", "Reason", "Status"}

func renderFraud(snapshot *magnusdomain.DashboardSnapshot, opts Options) View {
	if snapshot == nil {
		return loadingView(fraudTitle, fraudSubtitle, "Loading fraud intelligence…")
	}

	fraud := snapshot.Fraud
	metrics := fraud.Metrics

	view := View{
		Title:    fraudTitle,
		Subtitle: fraudSubtitle,
		Metrics: []Metric{
			{Label: "Transactions Analyzed", Value: formatCount(metrics.TransactionsAnalyzed)},
			{Label: "High Risk", Value: formatCount(metrics.BlockedHighRisk), Subtitle: "Blocked"},
			{Label: "Medium Risk", Value: formatCount(metrics.FlaggedMediumRisk), Subtitle: "Flagged for review"},
			{Label: "Low Risk", Value: formatCount(metrics.CleanTransactions), Subtitle: "Clean"},
			{Label: "Avg Risk Score", Value: formatScore(metrics.AvgRiskScore)},
		},
	}

	distribution := Table{Title: "Risk Distribution", Columns: []string{"Bucket", "Count", "Share"}}
	for _, slice := range fraud.RiskDistribution {
		distribution.Rows = append(distribution.Rows, []string{slice.Bucket, formatCount(slice.Count), formatPercent(slice.Percentage)})
	}

	anomalies := Table{Title: "Anomalies", Columns: []string{"Type", "Count", "Severity", "Description"}}
	for _, anomaly := range fraud.Anomalies {
		anomalies.Rows = append(anomalies.Rows, []string{anomaly.Type, formatCount(anomaly.Count), anomaly.Severity, anomaly.Description})
	}

	view.Tables = []Table{distribution, anomalies, riskTable("High Risk Transactions", fraud.HighRisk)}

	if opts.ShowMediumRisk {
		view.Tables = append(view.Tables, riskTable("Medium Risk Transactions", fraud.MediumRisk))
	} else if len(fraud.MediumRisk) > 0 {
		view.Notes = append(view.Notes, fmt.Sprintf("%s medium risk transactions hidden", formatCount(len(fraud.MediumRisk))))
	}

	events := Table{Title: "Events", Columns: []string{"Time", "Event", "Vendor", "Severity"}}
	for _, event := range fraud.Events {
		events.Rows = append(events.Rows, []string{event.Timestamp, event.Event, event.Vendor, event.Severity})
	}
	view.Tables = append(view.Tables, events)

	return view
}

func riskTable(title string, transactions []magnusdomain.FraudTransaction) Table {
	table := Table{Title: title, Columns: riskColumns}
	for _, tx := range transactions {
		table.Rows = append(table.Rows, []string{tx.ID, tx.Vendor, formatMoney(tx.Amount), formatScore(tx.RiskScore), tx.AnomalyType, tx.Reason, tx.Status})
	}
	return table
}
