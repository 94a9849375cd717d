package digesting

import (
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
)

// RotationScheduler escolhe os tipos de insight do dia a partir da tabela semanal
type RotationScheduler struct {
	schedule domain.RotationSchedule
}

func NewRotationScheduler(schedule domain.RotationSchedule) *RotationScheduler {
	return &RotationScheduler{schedule: schedule}
}

// WeekdayIndex converte o dia da semana para segunda=0 .. domingo=6
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SelectInsightTypes devolve os tipos do dia, descartando tipos desconhecidos.
// Dia sem entrada usa o catálogo completo.
func (r *RotationScheduler) SelectInsightTypes(weekday int) []domain.InsightType {
	selected := make([]domain.InsightType, 0)
	for _, insightType := range r.schedule[weekday] {
		if insightType.IsValid() {
			selected = append(selected, insightType)
		}
	}

	if len(selected) == 0 {
		return domain.AllInsightTypes()
	}

	return selected
}

func (r *RotationScheduler) ForDate(t time.Time) []domain.InsightType {
	return r.SelectInsightTypes(WeekdayIndex(t))
}
