package sectioning

import (
	"fmt"
	"sort"
	"strings"

	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

const (
	complianceTitle    = "Compliance Clearance"
	complianceSubtitle = "Regulatory requirements & policy adherence"
)

func renderCompliance(snapshot *magnusdomain.DashboardSnapshot, opts Options) View {
	if snapshot == nil {
		return loadingView(complianceTitle, complianceSubtitle, "Loading compliance insights…")
	}

	compliance := snapshot.Compliance
	metrics := compliance.Metrics

	view := View{
		Title:    complianceTitle,
		Subtitle: complianceSubtitle,
		Metrics: []Metric{
			{Label: "Total Checked", Value: formatCount(metrics.TotalChecked)},
			{Label: "Approved", Value: formatCount(metrics.Approved), Subtitle: formatPercent(metrics.ApprovalRate) + " approval rate"},
			{Label: "Blocked", Value: formatCount(metrics.Blocked), Subtitle: formatPercent(100-metrics.ApprovalRate) + " decline rate"},
			{Label: "Processing Time", Value: formatScore(metrics.ProcessingTimeSeconds) + "s"},
		},
	}

	rules := Table{Title: "Rules", Columns: []string{"Rule", "Checked", "Failed"}}
	for _, rule := range compliance.Rules {
		rules.Rows = append(rules.Rows, []string{rule.Rule, formatCount(rule.Checked), formatCount(rule.Failed)})
	}

	status, rule := normalizeStatusFilter(opts.ComplianceStatus), normalizeRuleFilter(opts.ComplianceRule)
	blocked := Table{Title: "Blocked Transactions", Columns: []string{"ID", "Vendor", "Amount", "Rule", "Reason", "Status"}}
	for _, tx := range FilterBlocked(compliance.BlockedTransactions, status, rule) {
		blocked.Rows = append(blocked.Rows, []string{tx.ID, tx.VendorName, formatMoney(tx.Amount), tx.RuleViolated, tx.Reason, tx.Status})
	}

	trend := Table{Title: "Trend", Columns: []string{"Period", "GST", "TDS", "FEMA", "KYC"}}
	for _, point := range compliance.Trend {
		trend.Rows = append(trend.Rows, []string{point.Name, formatCount(point.GST), formatCount(point.TDS), formatCount(point.FEMA), formatCount(point.KYC)})
	}

	actions := Table{Title: "Recent Actions", Columns: []string{"Time", "Action", "Vendor", "Status"}}
	for _, action := range compliance.RecentActions {
		actions.Rows = append(actions.Rows, []string{action.Timestamp, action.Action, action.Vendor, action.Status})
	}

	view.Tables = []Table{rules, blocked, trend, actions}
	view.Notes = []string{fmt.Sprintf("Filters: status=%s rule=%s", status, rule)}
	if available := UniqueRules(compliance.BlockedTransactions); len(available) > 0 {
		view.Notes = append(view.Notes, "Rules: "+strings.Join(available, ", "))
	}

	return view
}

// FilterBlocked aplica os filtros de status e regra sem alterar o slice original
func FilterBlocked(transactions []magnusdomain.ComplianceBlockedTransaction, status, rule string) []magnusdomain.ComplianceBlockedTransaction {
	filtered := make([]magnusdomain.ComplianceBlockedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if status != StatusFilterAll && !strings.EqualFold(tx.Status, status) {
			continue
		}
		if rule != RuleFilterAll && tx.RuleViolated != rule {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// UniqueRules lista as regras violadas, ordenadas e sem repetição
func UniqueRules(transactions []magnusdomain.ComplianceBlockedTransaction) []string {
	seen := make(map[string]struct{})
	var rules []string
	for _, tx := range transactions {
		if tx.RuleViolated == "" {
			continue
		}
		if _, ok := seen[tx.RuleViolated]; ok {
			continue
		}
		seen[tx.RuleViolated] = struct{}{}
		rules = append(rules, tx.RuleViolated)
	}
	sort.Strings(rules)
	return rules
}

func normalizeStatusFilter(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case StatusFilterBlocked:
		return StatusFilterBlocked
	case StatusFilterPending:
		return StatusFilterPending
	default:
		return StatusFilterAll
	}
}

func normalizeRuleFilter(rule string) string {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return RuleFilterAll
	}
	return rule
}
