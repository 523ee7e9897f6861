package sectioning

import "strings"

// Section identifica uma das telas do dashboard
type Section string

const (
	Overview       Section = "overview"
	Compliance     Section = "compliance"
	Fraud          Section = "fraud"
	Routing        Section = "routing"
	Settlement     Section = "settlement"
	Reconciliation Section = "reconciliation"
	Multibanker    Section = "multibanker"
	AuditLedger    Section = "audit-ledger"
	Explainability Section = "explainability"
	Integrations   Section = "integrations"
	Settings       Section = "settings"
)

type Category string

const (
	CategoryMain   Category = "MAIN"
	CategoryOthers Category = "OTHERS"
)

type MenuItem struct {
	ID       Section  `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Menu segue a ordem da barra lateral
var Menu = []MenuItem{
	{ID: Overview, Label: "Overview", Category: CategoryMain},
	{ID: Compliance, Label: "Compliance", Category: CategoryMain},
	{ID: Fraud, Label: "Fraud", Category: CategoryMain},
	{ID: Routing, Label: "Routing", Category: CategoryMain},
	{ID: Settlement, Label: "Settlement", Category: CategoryMain},
	{ID: Reconciliation, Label: "Reconciliation", Category: CategoryMain},
	{ID: Multibanker, Label: "Multi-Bank", Category: CategoryMain},
	{ID: AuditLedger, Label: "Audit Ledger", Category: CategoryMain},
	{ID: Explainability, Label: "Explainability", Category: CategoryMain},
	{ID: Integrations, Label: "Integrations", Category: CategoryOthers},
	{ID: Settings, Label: "Settings", Category: CategoryOthers},
}

// ParseSection converte o nome recebido; valores desconhecidos caem em Overview
func ParseSection(raw string) Section {
	candidate := Section(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := renderers[candidate]; ok {
		return candidate
	}
	return Overview
}

func (s Section) Label() string {
	for _, item := range Menu {
		if item.ID == s {
			return item.Label
		}
	}
	return string(s)
}

// MenuByCategory agrupa o menu mantendo a ordem original
func MenuByCategory() map[Category][]MenuItem {
	grouped := make(map[Category][]MenuItem)
	for _, item := range Menu {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}
