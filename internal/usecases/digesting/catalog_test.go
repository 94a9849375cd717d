package digesting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/infrastructure/repository/mocks"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"go.uber.org/mock/gomock"
)

type stubGenerator struct {
	insightType domain.InsightType
	generate    func(excluded domain.ExclusionSet) (*domain.InsightBlock, error)
	calls       int
}

func (g *stubGenerator) Type() domain.InsightType {
	return g.insightType
}

func (g *stubGenerator) Generate(_ context.Context, _ DataSource, _ time.Time, excluded domain.ExclusionSet) (*domain.InsightBlock, error) {
	g.calls++
	return g.generate(excluded)
}

func blockWithAccounts(insightType domain.InsightType, ids ...int64) *domain.InsightBlock {
	items := make([]domain.InsightItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.InsightItem{
			Name:      fmt.Sprintf("Conta %d", id),
			Detail:    "detalhe",
			Value:     "$1,000",
			AccountID: accountRef(id),
		})
	}
	return &domain.InsightBlock{Type: insightType, Title: string(insightType), Items: items}
}

func TestCatalog_Generate(t *testing.T) {
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		generators []*stubGenerator
		types      []domain.InsightType
		excluded   domain.ExclusionSet
		validate   func(t *testing.T, blocks []domain.InsightBlock, generators []*stubGenerator)
	}{
		{
			name: "Erro em um gerador não afeta os demais",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightPastDueAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return nil, errors.New("query falhou")
					},
				},
				{
					insightType: domain.InsightLapsedAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightLapsedAccounts, 1), nil
					},
				},
			},
			types:    []domain.InsightType{domain.InsightPastDueAccounts, domain.InsightLapsedAccounts},
			excluded: domain.NewExclusionSet(),
			validate: func(t *testing.T, blocks []domain.InsightBlock, generators []*stubGenerator) {
				require.Len(t, blocks, 1)
				assert.Equal(t, domain.InsightLapsedAccounts, blocks[0].Type)
				assert.Equal(t, 1, generators[0].calls)
			},
		},
		{
			name: "Panic em um gerador não afeta os demais",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightHotStreakAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						panic("nil pointer")
					},
				},
				{
					insightType: domain.InsightAnniversaryReorders,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightAnniversaryReorders, 7), nil
					},
				},
			},
			types:    []domain.InsightType{domain.InsightHotStreakAccounts, domain.InsightAnniversaryReorders},
			excluded: domain.NewExclusionSet(),
			validate: func(t *testing.T, blocks []domain.InsightBlock, _ []*stubGenerator) {
				require.Len(t, blocks, 1)
				assert.Equal(t, domain.InsightAnniversaryReorders, blocks[0].Type)
			},
		},
		{
			name: "Bloco sem itens não é emitido",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightPastDueAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return &domain.InsightBlock{Type: domain.InsightPastDueAccounts, Items: []domain.InsightItem{}}, nil
					},
				},
			},
			types:    []domain.InsightType{domain.InsightPastDueAccounts},
			excluded: domain.NewExclusionSet(),
			validate: func(t *testing.T, blocks []domain.InsightBlock, _ []*stubGenerator) {
				assert.Empty(t, blocks)
			},
		},
		{
			name: "Itens de contas excluídas e excedentes são removidos",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightPastDueAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightPastDueAccounts, 1, 20960, 2, 3, 4, 5, 6), nil
					},
				},
			},
			types:    []domain.InsightType{domain.InsightPastDueAccounts},
			excluded: domain.NewExclusionSet([]int64{20960}),
			validate: func(t *testing.T, blocks []domain.InsightBlock, _ []*stubGenerator) {
				require.Len(t, blocks, 1)
				require.Len(t, blocks[0].Items, domain.MaxInsightItems)
				for _, item := range blocks[0].Items {
					assert.NotEqual(t, int64(20960), *item.AccountID)
				}
				assert.Equal(t, int64(5), *blocks[0].Items[4].AccountID)
			},
		},
		{
			name: "Somente contas excluídas resulta em nenhum bloco",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightLapsedAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightLapsedAccounts, 20960), nil
					},
				},
			},
			types:    []domain.InsightType{domain.InsightLapsedAccounts},
			excluded: domain.NewExclusionSet([]int64{20960}),
			validate: func(t *testing.T, blocks []domain.InsightBlock, _ []*stubGenerator) {
				assert.Empty(t, blocks)
			},
		},
		{
			name: "Tipo sem gerador é ignorado e a ordem da rotação é mantida",
			generators: []*stubGenerator{
				{
					insightType: domain.InsightLapsedAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightLapsedAccounts, 1), nil
					},
				},
				{
					insightType: domain.InsightPastDueAccounts,
					generate: func(domain.ExclusionSet) (*domain.InsightBlock, error) {
						return blockWithAccounts(domain.InsightPastDueAccounts, 2), nil
					},
				},
			},
			types: []domain.InsightType{
				domain.InsightPastDueAccounts,
				domain.InsightHighValueEstimates,
				domain.InsightLapsedAccounts,
			},
			excluded: domain.NewExclusionSet(),
			validate: func(t *testing.T, blocks []domain.InsightBlock, _ []*stubGenerator) {
				require.Len(t, blocks, 2)
				assert.Equal(t, domain.InsightPastDueAccounts, blocks[0].Type)
				assert.Equal(t, domain.InsightLapsedAccounts, blocks[1].Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generators := make([]Generator, 0, len(tt.generators))
			for _, g := range tt.generators {
				generators = append(generators, g)
			}

			blocks := NewCatalogWith(generators...).Generate(context.Background(), nil, asOf, tt.types, tt.excluded)
			tt.validate(t, blocks, tt.generators)
		})
	}
}

func TestCatalog_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().AnniversaryReorders(gomock.Any(), gomock.Any()).Return(anniversaryFixture(asOf), nil).Times(2)
	mockRepo.EXPECT().LapsedAccounts(gomock.Any(), gomock.Any()).Return(lapsedFixture(asOf), nil).Times(2)
	mockRepo.EXPECT().PastDueAccounts(gomock.Any(), gomock.Any()).Return(pastDueFixture(), nil).Times(2)
	mockRepo.EXPECT().HotStreakAccounts(gomock.Any(), gomock.Any()).Return(hotStreakFixture(), nil).Times(2)
	mockRepo.EXPECT().HighValueEstimates(gomock.Any(), gomock.Any()).Return(estimateFixture(asOf), nil).Times(2)

	catalog := NewCatalog(DefaultThresholds())
	empty := domain.NewExclusionSet()

	first := catalog.Generate(context.Background(), mockRepo, asOf, domain.AllInsightTypes(), empty)
	second := catalog.Generate(context.Background(), mockRepo, asOf, domain.AllInsightTypes(), empty)

	require.Len(t, first, 5)
	assert.Equal(t, first, second)
	for _, block := range first {
		assert.NotEmpty(t, block.Items)
		assert.LessOrEqual(t, len(block.Items), domain.MaxInsightItems)
	}
}
