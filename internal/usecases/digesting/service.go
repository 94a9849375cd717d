package digesting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/log"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

var (
	// ErrDataSource indica falha em uma consulta principal; nada é entregue
	ErrDataSource = errors.New("falha ao consultar os dados do PrintSmith")
	// ErrDelivery indica falha no envio; o payload calculado é devolvido junto
	ErrDelivery = errors.New("falha ao entregar o digest")
)

type RunOptions struct {
	Now    time.Time
	DryRun bool
	Source domain.ExportSource
}

type Exporter interface {
	Run(ctx context.Context, opts RunOptions) (*domain.DigestPayload, error)
}

type Service struct {
	policy    Policy
	repo      Repository
	oracle    *FreshnessOracle
	rotation  *RotationScheduler
	catalog   *Catalog
	assembler *Assembler
	deliverer Deliverer
	now       func() time.Time
}

func NewService(
	policy Policy,
	repo Repository,
	history HistoryService,
	deliverer Deliverer,
	freshnessTimeout time.Duration,
) *Service {
	return &Service{
		policy:    policy,
		repo:      repo,
		oracle:    NewFreshnessOracle(history, freshnessTimeout),
		rotation:  NewRotationScheduler(policy.Rotation),
		catalog:   NewCatalog(policy.Thresholds),
		assembler: NewAssembler(policy),
		deliverer: deliverer,
		now:       time.Now,
	}
}

// WithCatalog substitui o catálogo de geradores
func (s *Service) WithCatalog(catalog *Catalog) *Service {
	s.catalog = catalog
	return s
}

// Run executa uma exportação completa: período, consultas, exclusões,
// rotação, insights, montagem e entrega (exceto em dry-run)
func (s *Service) Run(ctx context.Context, opts RunOptions) (*domain.DigestPayload, error) {
	if log.GetRunID(ctx) == "" {
		ctx, _ = log.WithRunID(ctx)
	}

	now := opts.Now
	if now.IsZero() {
		now = s.now()
	}

	source := opts.Source
	if source == "" {
		source = domain.ExportSourceManual
	}
	if opts.DryRun {
		source = domain.ExportSourcePreview
	}

	started := time.Now()
	period := ResolvePeriod(now, s.policy.Location)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"period": period.Label(),
		"source": string(source),
	})
	logger.Info("Iniciando exportação do digest")

	metrics, input, err := s.collect(ctx, period)
	if err != nil {
		logger.WithError(err).Error("Falha nas consultas principais, exportação abortada")
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	excluded := s.policy.PermanentExclusions().
		Union(s.oracle.FetchExcludedAccounts(ctx, s.policy.LookbackDays, opts.DryRun).IDs())

	runDate := now.In(s.policy.Location)
	types := s.rotation.ForDate(runDate)
	logger.Infof("Tipos de insight do dia: %v", types)

	insights := s.catalog.Generate(ctx, s.repo, period.EndDate, types, excluded)

	payload := s.assembler.Assemble(period, metrics, input, excluded, insights)
	payload.ExportSource = source

	exportID, err := utils.GenerateExportID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador da exportação: %w", err)
	}
	payload.ExportID = exportID

	logger.Infof("Digest montado: %d faturas, %d destaques, %d insights",
		payload.YesterdayInvoices.InvoiceCount, len(payload.Highlights), len(payload.Insights))

	if opts.DryRun {
		logger.Info("Dry-run: digest não enviado")
		return payload, nil
	}

	if s.deliverer == nil {
		return payload, fmt.Errorf("%w: destino de entrega não configurado", ErrDelivery)
	}

	receipt, err := s.deliverer.SendDigest(ctx, payload)
	if err != nil {
		logger.WithError(err).Error("Falha ao enviar o digest")
		return payload, fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logger.WithField("duration_ms", time.Since(started).Milliseconds()).
		Infof("Exportação %s concluída: %v", exportID, receipt)

	return payload, nil
}

// collect executa as consultas principais; qualquer erro interrompe a execução
func (s *Service) collect(ctx context.Context, period domain.ReportingPeriod) (domain.PeriodMetrics, HighlightsInput, error) {
	var metrics domain.PeriodMetrics
	var input HighlightsInput
	var err error

	if input.Invoices, err = s.repo.CompletedInvoices(ctx, period); err != nil {
		return metrics, input, err
	}

	if input.Estimates, err = s.repo.CreatedEstimates(ctx, period); err != nil {
		return metrics, input, err
	}

	if input.PMRows, err = s.repo.OpenInvoicesByPM(ctx, s.policy.ValidPMs); err != nil {
		return metrics, input, err
	}

	if input.BDRows, err = s.repo.OpenInvoicesByBD(ctx, s.policy.ValidBDs); err != nil {
		return metrics, input, err
	}

	ranges := []struct {
		target *domain.SalesSummary
		from   time.Time
	}{
		{target: &metrics.Period, from: period.StartDate},
		{target: &metrics.MTD, from: utils.FirstDayOfMonth(period.EndDate)},
		{target: &metrics.YTD, from: utils.FirstDayOfYear(period.EndDate)},
	}

	for _, r := range ranges {
		summary, err := s.repo.SalesSummary(ctx, r.from, period.EndDate)
		if err != nil {
			return metrics, input, err
		}
		if summary != nil {
			*r.target = *summary
		}
	}

	return metrics, input, nil
}
