package digesting

import (
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

// ResolvePeriod calcula o período coberto por uma execução no fuso informado.
// Na segunda-feira cobre de sexta a domingo; nos demais dias, apenas ontem.
func ResolvePeriod(now time.Time, loc *time.Location) domain.ReportingPeriod {
	if loc == nil {
		loc = time.UTC
	}

	today := utils.StartOfDay(now.In(loc))

	if today.Weekday() == time.Monday {
		return domain.ReportingPeriod{
			StartDate:         today.AddDate(0, 0, -3),
			EndDate:           today.AddDate(0, 0, -1),
			IsMultiDayCatchup: true,
		}
	}

	yesterday := today.AddDate(0, 0, -1)

	return domain.ReportingPeriod{
		StartDate:         yesterday,
		EndDate:           yesterday,
		IsMultiDayCatchup: false,
	}
}
