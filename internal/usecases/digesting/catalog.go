package digesting

import (
	"context"
	"time"

	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/log"
)

// Generator produz no máximo um bloco de insight de um tipo.
// Retorna nil quando nenhuma conta se qualifica.
type Generator interface {
	Type() domain.InsightType
	Generate(ctx context.Context, ds DataSource, asOf time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error)
}

// Catalog é o registro fixo de geradores, na ordem de domain.AllInsightTypes
type Catalog struct {
	generators map[domain.InsightType]Generator
}

func NewCatalog(thresholds Thresholds) *Catalog {
	return NewCatalogWith(
		&anniversaryGenerator{thresholds: thresholds},
		&lapsedGenerator{thresholds: thresholds},
		&pastDueGenerator{thresholds: thresholds},
		&hotStreakGenerator{thresholds: thresholds},
		&highValueEstimateGenerator{thresholds: thresholds},
	)
}

func NewCatalogWith(generators ...Generator) *Catalog {
	registry := make(map[domain.InsightType]Generator, len(generators))
	for _, generator := range generators {
		registry[generator.Type()] = generator
	}
	return &Catalog{generators: registry}
}

// Generate executa os geradores selecionados em sequência. A falha de um
// gerador é registrada e não afeta os demais.
func (c *Catalog) Generate(
	ctx context.Context,
	ds DataSource,
	asOf time.Time,
	types []domain.InsightType,
	excluded domain.ExclusionSet,
) []domain.InsightBlock {
	blocks := make([]domain.InsightBlock, 0, len(types))

	for _, insightType := range types {
		logger := log.ForContext(ctx).WithField("insight_type", string(insightType))

		generator, ok := c.generators[insightType]
		if !ok {
			logger.Warn("Tipo de insight sem gerador registrado")
			continue
		}

		block, ok := tryRun(ctx, string(insightType), func() (*domain.InsightBlock, error) {
			return generator.Generate(ctx, ds, asOf, excluded)
		})
		if !ok {
			continue
		}

		block = sanitizeBlock(block, excluded)
		if block == nil {
			logger.Info("Nenhuma conta qualificada para o insight")
			continue
		}

		logger.Infof("Insight gerado com %d itens", len(block.Items))
		blocks = append(blocks, *block)
	}

	return blocks
}

// sanitizeBlock garante as regras de um bloco emitido: nenhum item de conta
// excluída, no máximo MaxInsightItems e nunca um bloco vazio
func sanitizeBlock(block *domain.InsightBlock, excluded domain.ExclusionSet) *domain.InsightBlock {
	if block == nil {
		return nil
	}

	items := make([]domain.InsightItem, 0, len(block.Items))
	for _, item := range block.Items {
		if item.AccountID != nil && excluded.Contains(*item.AccountID) {
			continue
		}
		items = append(items, item)
		if len(items) == domain.MaxInsightItems {
			break
		}
	}

	if len(items) == 0 {
		return nil
	}

	sanitized := *block
	sanitized.Items = items
	return &sanitized
}
