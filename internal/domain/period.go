package domain

import (
	"fmt"
	"time"
)

// ReportingPeriod representa o intervalo de datas (inclusivo) coberto por uma exportação
type ReportingPeriod struct {
	StartDate         time.Time
	EndDate           time.Time
	IsMultiDayCatchup bool
}

// Days retorna a quantidade de dias do período
func (p ReportingPeriod) Days() int {
	start := calendarDate(p.StartDate)
	end := calendarDate(p.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// calendarDate descarta o fuso para que a troca de horário de verão não altere a contagem
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Label formata o período para logs e para o payload
func (p ReportingPeriod) Label() string {
	if p.StartDate.Equal(p.EndDate) {
		return p.EndDate.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s to %s", p.StartDate.Format(time.DateOnly), p.EndDate.Format(time.DateOnly))
}
