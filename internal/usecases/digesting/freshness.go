package digesting

import (
	"context"
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/log"
)

const DefaultFreshnessTimeout = 10 * time.Second

// FreshnessOracle consulta o histórico de contas já exibidas.
// Nunca interrompe a execução: qualquer falha vira um conjunto vazio.
type FreshnessOracle struct {
	history HistoryService
	timeout time.Duration
}

func NewFreshnessOracle(history HistoryService, timeout time.Duration) *FreshnessOracle {
	if timeout <= 0 {
		timeout = DefaultFreshnessTimeout
	}

	return &FreshnessOracle{
		history: history,
		timeout: timeout,
	}
}

func (o *FreshnessOracle) FetchExcludedAccounts(ctx context.Context, lookbackDays int, dryRun bool) domain.ExclusionSet {
	logger := log.ForContext(ctx).WithField("source", "freshness")

	if dryRun {
		logger.Debug("Dry-run: histórico de contas exibidas não consultado")
		return domain.NewExclusionSet()
	}

	if o.history == nil {
		logger.Warn("Serviço de histórico não configurado, sem exclusões recentes")
		return domain.NewExclusionSet()
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	history, ok := tryRun(ctx, "freshness", func() (*domain.ShownHistory, error) {
		return o.history.ShownHistory(ctx, lookbackDays)
	})
	if !ok || history == nil {
		logger.Warn("Histórico indisponível, insights podem repetir contas recentes")
		return domain.NewExclusionSet()
	}

	excluded := domain.NewExclusionSet(history.AccountIDs)
	logger.Infof("%d contas exibidas nos últimos %d dias serão evitadas", excluded.Len(), lookbackDays)

	return excluded
}
