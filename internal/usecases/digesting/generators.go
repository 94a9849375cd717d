package digesting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

// candidatePoolSize é quantos candidatos cada consulta traz antes do filtro final
const candidatePoolSize = 25

const displayDate = "Jan 2, 2006"

func accountRef(id int64) *int64 {
	return &id
}

// takeDistinct mantém o primeiro candidato de cada conta, ignorando as excluídas
func takeDistinct[T any](candidates []T, accountID func(T) int64, excluded domain.ExclusionSet) []T {
	seen := make(map[int64]struct{})
	result := make([]T, 0, domain.MaxInsightItems)

	for _, candidate := range candidates {
		id := accountID(candidate)
		if excluded.Contains(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		result = append(result, candidate)
		if len(result) == domain.MaxInsightItems {
			break
		}
	}

	return result
}

func newBlock(insightType domain.InsightType, title, message string, items []domain.InsightItem) *domain.InsightBlock {
	if len(items) == 0 {
		return nil
	}

	return &domain.InsightBlock{
		Type:    insightType,
		Title:   title,
		Message: message,
		Items:   items,
	}
}

// anniversaryGenerator: pedidos retirados entre 10 e 11 meses atrás, valor mínimo configurado.
// Ordenado por valor.
type anniversaryGenerator struct {
	thresholds Thresholds
}

func (g *anniversaryGenerator) Type() domain.InsightType {
	return domain.InsightAnniversaryReorders
}

func (g *anniversaryGenerator) Generate(ctx context.Context, ds DataSource, asOf time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	candidates, err := ds.AnniversaryReorders(ctx, domain.AnniversaryQuery{
		PickupFrom:  asOf.AddDate(0, -11, 0),
		PickupTo:    asOf.AddDate(0, -10, 0),
		MinAmount:   g.thresholds.AnniversaryMinAmount,
		ExcludedIDs: excluded.IDs(),
		Limit:       candidatePoolSize,
	})
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.AnniversaryCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Amount.GreaterThanOrEqual(g.thresholds.AnniversaryMinAmount) {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Amount.GreaterThan(qualified[j].Amount)
	})

	selected := takeDistinct(qualified, func(c domain.AnniversaryCandidate) int64 { return c.AccountID }, excluded)

	items := make([]domain.InsightItem, 0, len(selected))
	for _, c := range selected {
		detail := fmt.Sprintf("Picked up %s", c.PickupDate.Format(displayDate))
		if c.JobDescription != "" {
			detail = fmt.Sprintf("%s: %s", detail, c.JobDescription)
		}

		items = append(items, domain.InsightItem{
			Name:      c.AccountName,
			Detail:    detail,
			Value:     utils.FormatWholeCurrency(c.Amount),
			AccountID: accountRef(c.AccountID),
		})
	}

	return newBlock(
		domain.InsightAnniversaryReorders,
		"Anniversary Reorders",
		"These customers placed a sizable order about a year ago. A good time to ask about a reorder.",
		items,
	), nil
}

// lapsedGenerator: contas com valor histórico alto e sem pedidos há N meses.
// As que pararam mais recentemente vêm primeiro.
type lapsedGenerator struct {
	thresholds Thresholds
}

func (g *lapsedGenerator) Type() domain.InsightType {
	return domain.InsightLapsedAccounts
}

func (g *lapsedGenerator) Generate(ctx context.Context, ds DataSource, asOf time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	lastOrderBefore := asOf.AddDate(0, -g.thresholds.LapsedAfterMonths, 0)

	candidates, err := ds.LapsedAccounts(ctx, domain.LapsedQuery{
		MinLifetimeValue: g.thresholds.LapsedMinLifetimeValue,
		LastOrderBefore:  lastOrderBefore,
		LastOrderAfter:   asOf.AddDate(0, -g.thresholds.LapsedMaxMonths, 0),
		ExcludedIDs:      excluded.IDs(),
		Limit:            candidatePoolSize,
	})
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.LapsedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.LifetimeValue.GreaterThanOrEqual(g.thresholds.LapsedMinLifetimeValue) && c.LastOrderDate.Before(lastOrderBefore) {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if !qualified[i].LastOrderDate.Equal(qualified[j].LastOrderDate) {
			return qualified[i].LastOrderDate.After(qualified[j].LastOrderDate)
		}
		return qualified[i].LifetimeValue.GreaterThan(qualified[j].LifetimeValue)
	})

	selected := takeDistinct(qualified, func(c domain.LapsedCandidate) int64 { return c.AccountID }, excluded)

	items := make([]domain.InsightItem, 0, len(selected))
	for _, c := range selected {
		items = append(items, domain.InsightItem{
			Name:      c.AccountName,
			Detail:    fmt.Sprintf("Last order %s (%d orders)", c.LastOrderDate.Format(displayDate), c.OrderCount),
			Value:     utils.FormatWholeCurrency(c.LifetimeValue) + " lifetime",
			AccountID: accountRef(c.AccountID),
		})
	}

	return newBlock(
		domain.InsightLapsedAccounts,
		"Lapsed Accounts",
		"Valuable customers who have not ordered in a while. Worth a personal check-in.",
		items,
	), nil
}

// pastDueGenerator: soma dos saldos de 30, 60 e 90 dias acima do mínimo. Maior saldo primeiro.
type pastDueGenerator struct {
	thresholds Thresholds
}

func (g *pastDueGenerator) Type() domain.InsightType {
	return domain.InsightPastDueAccounts
}

func (g *pastDueGenerator) Generate(ctx context.Context, ds DataSource, _ time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	candidates, err := ds.PastDueAccounts(ctx, domain.PastDueQuery{
		MinBalance:  g.thresholds.PastDueMinBalance,
		ExcludedIDs: excluded.IDs(),
		Limit:       candidatePoolSize,
	})
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.PastDueCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Total().GreaterThan(g.thresholds.PastDueMinBalance) {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Total().GreaterThan(qualified[j].Total())
	})

	selected := takeDistinct(qualified, func(c domain.PastDueCandidate) int64 { return c.AccountID }, excluded)

	items := make([]domain.InsightItem, 0, len(selected))
	for _, c := range selected {
		items = append(items, domain.InsightItem{
			Name: c.AccountName,
			Detail: fmt.Sprintf("30d %s / 60d %s / 90d %s",
				utils.FormatWholeCurrency(c.Aging30),
				utils.FormatWholeCurrency(c.Aging60),
				utils.FormatWholeCurrency(c.Aging90),
			),
			Value:     utils.FormatWholeCurrency(c.Total()) + " past due",
			AccountID: accountRef(c.AccountID),
		})
	}

	return newBlock(
		domain.InsightPastDueAccounts,
		"Past Due Accounts",
		"Accounts carrying an aging balance. Follow up before the next order ships.",
		items,
	), nil
}

// hotStreakGenerator: mais pedidos na janela recente do que na anterior e gasto recente mínimo.
// Ordenado pelo ganho de frequência e depois pelo gasto.
type hotStreakGenerator struct {
	thresholds Thresholds
}

func (g *hotStreakGenerator) Type() domain.InsightType {
	return domain.InsightHotStreakAccounts
}

func (g *hotStreakGenerator) Generate(ctx context.Context, ds DataSource, asOf time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	window := g.thresholds.HotStreakWindowMonths

	candidates, err := ds.HotStreakAccounts(ctx, domain.HotStreakQuery{
		PriorFrom:      asOf.AddDate(0, -2*window, 0),
		RecentFrom:     asOf.AddDate(0, -window, 0),
		Until:          asOf,
		MinRecentSpend: g.thresholds.HotStreakMinRecentSpend,
		ExcludedIDs:    excluded.IDs(),
		Limit:          candidatePoolSize,
	})
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.HotStreakCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RecentCount > c.PriorCount && c.RecentSpend.GreaterThanOrEqual(g.thresholds.HotStreakMinRecentSpend) {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].FrequencyDelta() != qualified[j].FrequencyDelta() {
			return qualified[i].FrequencyDelta() > qualified[j].FrequencyDelta()
		}
		return qualified[i].RecentSpend.GreaterThan(qualified[j].RecentSpend)
	})

	selected := takeDistinct(qualified, func(c domain.HotStreakCandidate) int64 { return c.AccountID }, excluded)

	items := make([]domain.InsightItem, 0, len(selected))
	for _, c := range selected {
		items = append(items, domain.InsightItem{
			Name:      c.AccountName,
			Detail:    fmt.Sprintf("%d orders (was %d)", c.RecentCount, c.PriorCount),
			Value:     utils.FormatWholeCurrency(c.RecentSpend) + " recent",
			AccountID: accountRef(c.AccountID),
		})
	}

	return newBlock(
		domain.InsightHotStreakAccounts,
		"Hot Streak",
		"These customers are ordering more often than before. Keep the momentum going.",
		items,
	), nil
}

// highValueEstimateGenerator: orçamentos em aberto acima do valor mínimo e criados há pouco.
// Os mais recentes vêm primeiro, depois o valor.
type highValueEstimateGenerator struct {
	thresholds Thresholds
}

func (g *highValueEstimateGenerator) Type() domain.InsightType {
	return domain.InsightHighValueEstimates
}

func (g *highValueEstimateGenerator) Generate(ctx context.Context, ds DataSource, asOf time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	candidates, err := ds.HighValueEstimates(ctx, domain.HighValueEstimateQuery{
		MinAmount:    g.thresholds.HighValueEstimateMinAmount,
		CreatedSince: asOf.AddDate(0, 0, -g.thresholds.HighValueEstimateMaxAgeDays),
		ExcludedIDs:  excluded.IDs(),
		Limit:        candidatePoolSize,
	})
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.EstimateCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Amount.GreaterThanOrEqual(g.thresholds.HighValueEstimateMinAmount) {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if !qualified[i].CreatedAt.Equal(qualified[j].CreatedAt) {
			return qualified[i].CreatedAt.After(qualified[j].CreatedAt)
		}
		return qualified[i].Amount.GreaterThan(qualified[j].Amount)
	})

	selected := takeDistinct(qualified, func(c domain.EstimateCandidate) int64 { return c.AccountID }, excluded)

	items := make([]domain.InsightItem, 0, len(selected))
	for _, c := range selected {
		detail := fmt.Sprintf("Estimate #%s from %s", c.EstimateNumber, c.CreatedAt.Format(displayDate))
		if c.JobDescription != "" {
			detail = fmt.Sprintf("%s: %s", detail, c.JobDescription)
		}

		items = append(items, domain.InsightItem{
			Name:      c.AccountName,
			Detail:    detail,
			Value:     utils.FormatWholeCurrency(c.Amount),
			AccountID: accountRef(c.AccountID),
		})
	}

	return newBlock(
		domain.InsightHighValueEstimates,
		"High-Value Estimates",
		"Large open estimates that have not turned into orders yet. A quick follow-up could close them.",
		items,
	), nil
}
