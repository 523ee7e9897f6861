package magnusdomain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshot é o agregado completo devolvido pela API da Magnus para uma sessão.
// O snapshot é sempre buscado inteiro e nunca é alterado depois de decodificado.
type DashboardSnapshot struct {
	SessionID      string                `json:"sessionId"`
	GeneratedAt    time.Time             `json:"generatedAt"`
	Session        Session               `json:"session"`
	Overview       OverviewPayload       `json:"overview"`
	Routing        RoutingPayload        `json:"routing"`
	Compliance     CompliancePayload     `json:"compliance"`
	Fraud          FraudPayload          `json:"fraud"`
	Settlement     SettlementPayload     `json:"settlement"`
	Reconciliation ReconciliationPayload `json:"reconciliation"`
	Multibank      MultibankPayload      `json:"multibank"`
	Audit          AuditPayload          `json:"audit"`
	Explainability ExplainabilityPayload `json:"explainability"`
}

type OverviewMetrics struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalVolume       decimal.Decimal `json:"total_volume"`
	UniqueVendors     int             `json:"unique_vendors"`
	// Quantidade de transações por moeda (ex: INR, USD)
	CurrencyBreakdown map[string]int `json:"currency_breakdown"`
}

type OverviewPaymentMethod struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type OverviewRecentTransaction struct {
	ID            string          `json:"id"`
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Bank          string          `json:"bank"`
	Date          string          `json:"date"`
}

type OverviewPayload struct {
	Metrics            OverviewMetrics             `json:"metrics"`
	PaymentMethods     []OverviewPaymentMethod     `json:"payment_methods"`
	RecentTransactions []OverviewRecentTransaction `json:"recent_transactions"`
}

type RoutingMetrics struct {
	TransactionsRouted    int             `json:"transactions_routed"`
	AvgFeeSaved           decimal.Decimal `json:"avg_fee_saved"`
	TotalCostOptimized    decimal.Decimal `json:"total_cost_optimized"`
	AvgSuccessProbability float64         `json:"avg_success_probability"`
}

type RoutingDistribution struct {
	Method     string          `json:"method"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	Percentage float64         `json:"percentage"`
}

type RoutingRecommendation struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	SelectedRoute string          `json:"selectedRoute"`
	SuccessProb   float64         `json:"successProb"`
	Fee           decimal.Decimal `json:"fee"`
	Reason        string          `json:"reason"`
}

// RailPerformance descreve a saúde de um trilho de pagamento (NEFT, IMPS, RTGS, SWIFT...)
type RailPerformance struct {
	Rail        string  `json:"rail"`
	SuccessRate float64 `json:"success_rate"`
	Fee         string  `json:"fee"`
	AvgTime     string  `json:"avg_time"`
	QueueLength int     `json:"queue_length"`
	LastUpdated string  `json:"last_updated"`
}

type RoutingDecision struct {
	Timestamp   string  `json:"timestamp"`
	Transaction string  `json:"transaction"`
	Decision    string  `json:"decision"`
	Status      string  `json:"status"`
	Score       float64 `json:"score"`
}

type RoutingPayload struct {
	Metrics         RoutingMetrics          `json:"metrics"`
	Distribution    []RoutingDistribution   `json:"distribution"`
	Recommendations []RoutingRecommendation `json:"recommendations"`
	BankPerformance []RailPerformance       `json:"bank_performance"`
	Decisions       []RoutingDecision       `json:"decisions"`
}

type ComplianceMetrics struct {
	TotalChecked          int     `json:"total_checked"`
	Approved              int     `json:"approved"`
	Blocked               int     `json:"blocked"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	ApprovalRate          float64 `json:"approval_rate"`
}

type ComplianceRuleSummary struct {
	Rule    string `json:"rule"`
	Checked int    `json:"checked"`
	Failed  int    `json:"failed"`
}

type ComplianceBlockedTransaction struct {
	ID           string          `json:"id"`
	VendorID     string          `json:"vendorId"`
	VendorName   string          `json:"vendorName"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	RuleViolated string          `json:"ruleViolated"`
	Status       string          `json:"status"`
}

type ComplianceTrendPoint struct {
	Name string `json:"name"`
	GST  int    `json:"gst"`
	TDS  int    `json:"tds"`
	FEMA int    `json:"fema"`
	KYC  int    `json:"kyc"`
}

type ComplianceRecentAction struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Vendor    string `json:"vendor"`
	Status    string `json:"status"`
}

type CompliancePayload struct {
	Metrics             ComplianceMetrics              `json:"metrics"`
	Rules               []ComplianceRuleSummary        `json:"rules"`
	BlockedTransactions []ComplianceBlockedTransaction `json:"blocked_transactions"`
	Trend               []ComplianceTrendPoint         `json:"trend"`
	RecentActions       []ComplianceRecentAction       `json:"recent_actions"`
}

type FraudMetrics struct {
	TransactionsAnalyzed int     `json:"transactions_analyzed"`
	CleanTransactions    int     `json:"clean_transactions"`
	FlaggedMediumRisk    int     `json:"flagged_medium_risk"`
	BlockedHighRisk      int     `json:"blocked_high_risk"`
	AvgRiskScore         float64 `json:"avg_risk_score"`
}

type FraudRiskSlice struct {
	Bucket     string  `json:"bucket"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type FraudAnomalyBreakdown struct {
	Type        string `json:"type"`
	Count       int    `json:"count"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type FraudTransaction struct {
	ID          string            `json:"id"`
	Amount      decimal.Decimal   `json:"amount"`
	Vendor      string            `json:"vendor"`
	VendorID    string            `json:"vendorId"`
	RiskScore   float64           `json:"riskScore"`
	AnomalyType string            `json:"anomalyType"`
	Reason      string            `json:"reason"`
	Status      string            `json:"status"`
	Details     map[string]string `json:"details,omitempty"`
}

type FraudEvent struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Vendor    string `json:"vendor"`
	VendorID  string `json:"vendorId"`
	Severity  string `json:"severity"`
}

type FraudPayload struct {
	Metrics          FraudMetrics            `json:"metrics"`
	RiskDistribution []FraudRiskSlice        `json:"risk_distribution"`
	Anomalies        []FraudAnomalyBreakdown `json:"anomalies"`
	HighRisk         []FraudTransaction      `json:"high_risk"`
	MediumRisk       []FraudTransaction      `json:"medium_risk"`
	Events           []FraudEvent            `json:"events"`
}

type SettlementTimelineItem struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Vendor string          `json:"vendor"`
	Status string          `json:"status"`
}

type SettlementPayload struct {
	Counts   map[string]int           `json:"counts"`
	Timeline []SettlementTimelineItem `json:"timeline"`
}

// ReconciliationMatch resume o three-way match (ledger, extrato e confirmação do fornecedor)
type ReconciliationMatch struct {
	TransactionID   string          `json:"transactionId"`
	Amount          decimal.Decimal `json:"amount"`
	OverallStatus   string          `json:"overallStatus"`
	ConfidenceScore float64         `json:"confidenceScore"`
}

type ReconciliationPayload struct {
	Matches []ReconciliationMatch `json:"matches"`
}

type BankSummary struct {
	BankName     string          `json:"bankName"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions int             `json:"transactions"`
}

type MultibankPayload struct {
	Banks []BankSummary `json:"banks"`
}

type AuditEntryStep struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type AuditEntry struct {
	TransactionID string           `json:"transactionId"`
	Vendor        string           `json:"vendor"`
	Amount        decimal.Decimal  `json:"amount"`
	Steps         []AuditEntryStep `json:"steps"`
}

type AuditPayload struct {
	Entries []AuditEntry `json:"entries"`
}

type ExplainabilityInsight struct {
	Query      string  `json:"query"`
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}

type ExplainabilityPayload struct {
	Insights []ExplainabilityInsight `json:"insights"`
}
