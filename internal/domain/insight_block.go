package domain

// InsightType identifica uma das categorias fixas de insight
type InsightType string

const (
	InsightAnniversaryReorders InsightType = "anniversary_reorders"
	InsightLapsedAccounts      InsightType = "lapsed_accounts"
	InsightPastDueAccounts     InsightType = "past_due_accounts"
	InsightHotStreakAccounts   InsightType = "hot_streak_accounts"
	InsightHighValueEstimates  InsightType = "high_value_estimates"
)

// MaxInsightItems limita a quantidade de itens de um bloco
const MaxInsightItems = 5

// AllInsightTypes retorna o catálogo completo na ordem de registro
func AllInsightTypes() []InsightType {
	return []InsightType{
		InsightAnniversaryReorders,
		InsightLapsedAccounts,
		InsightPastDueAccounts,
		InsightHotStreakAccounts,
		InsightHighValueEstimates,
	}
}

func (t InsightType) IsValid() bool {
	for _, known := range AllInsightTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type InsightItem struct {
	Name      string `json:"name"`
	Detail    string `json:"detail"`
	Value     string `json:"value"`
	AccountID *int64 `json:"accountId,omitempty"`
}

type InsightBlock struct {
	Type    InsightType   `json:"type"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Items   []InsightItem `json:"items"`
}

// RotationSchedule mapeia o dia da semana (segunda=0 .. domingo=6) para os tipos de insight do dia
type RotationSchedule map[int][]InsightType

// DefaultRotationSchedule cobre os cinco tipos ao longo da semana, com repetição
func DefaultRotationSchedule() RotationSchedule {
	return RotationSchedule{
		0: {InsightPastDueAccounts, InsightHotStreakAccounts, InsightHighValueEstimates},
		1: {InsightAnniversaryReorders, InsightLapsedAccounts},
		2: {InsightHotStreakAccounts, InsightAnniversaryReorders},
		3: {InsightPastDueAccounts, InsightHighValueEstimates, InsightLapsedAccounts},
		4: {InsightAnniversaryReorders, InsightHotStreakAccounts},
		5: {InsightLapsedAccounts, InsightHighValueEstimates},
		6: {InsightPastDueAccounts, InsightAnniversaryReorders},
	}
}
