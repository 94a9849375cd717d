package digesting

import (
	"context"
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
)

// MetricsSource fornece as consultas principais do digest. Qualquer erro aqui é fatal.
type MetricsSource interface {
	CompletedInvoices(ctx context.Context, period domain.ReportingPeriod) ([]domain.Invoice, error)
	CreatedEstimates(ctx context.Context, period domain.ReportingPeriod) ([]domain.Estimate, error)
	OpenInvoicesByPM(ctx context.Context, names []string) ([]domain.PerformanceRow, error)
	OpenInvoicesByBD(ctx context.Context, names []string) ([]domain.PerformanceRow, error)
	SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)
}

// DataSource fornece os candidatos de cada gerador de insight
type DataSource interface {
	AnniversaryReorders(ctx context.Context, query domain.AnniversaryQuery) ([]domain.AnniversaryCandidate, error)
	LapsedAccounts(ctx context.Context, query domain.LapsedQuery) ([]domain.LapsedCandidate, error)
	PastDueAccounts(ctx context.Context, query domain.PastDueQuery) ([]domain.PastDueCandidate, error)
	HotStreakAccounts(ctx context.Context, query domain.HotStreakQuery) ([]domain.HotStreakCandidate, error)
	HighValueEstimates(ctx context.Context, query domain.HighValueEstimateQuery) ([]domain.EstimateCandidate, error)
}

type Repository interface {
	MetricsSource
	DataSource
}

type HistoryService interface {
	ShownHistory(ctx context.Context, days int) (*domain.ShownHistory, error)
}

type Deliverer interface {
	SendDigest(ctx context.Context, payload *domain.DigestPayload) (domain.DeliveryReceipt, error)
}
