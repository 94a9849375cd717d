package digesting

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/infrastructure/repository/mocks"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"go.uber.org/mock/gomock"
)

func anniversaryFixture(asOf time.Time) []domain.AnniversaryCandidate {
	pickup := asOf.AddDate(0, -10, -10)
	return []domain.AnniversaryCandidate{
		{AccountID: 11, AccountName: "Initech", InvoiceNumber: "1001", PickupDate: pickup, Amount: decimal.NewFromInt(900), JobDescription: "Brochures"},
		{AccountID: 12, AccountName: "Umbrella", InvoiceNumber: "1002", PickupDate: pickup, Amount: decimal.NewFromInt(2400)},
		{AccountID: 11, AccountName: "Initech", InvoiceNumber: "1003", PickupDate: pickup, Amount: decimal.NewFromInt(700)},
		{AccountID: 13, AccountName: "Hooli", InvoiceNumber: "1004", PickupDate: pickup, Amount: decimal.NewFromInt(400)},
	}
}

func lapsedFixture(asOf time.Time) []domain.LapsedCandidate {
	return []domain.LapsedCandidate{
		{AccountID: 21, AccountName: "Soylent", LastOrderDate: asOf.AddDate(0, -9, 0), LifetimeValue: decimal.NewFromInt(12000), OrderCount: 14},
		{AccountID: 22, AccountName: "Tyrell", LastOrderDate: asOf.AddDate(0, -7, 0), LifetimeValue: decimal.NewFromInt(6000), OrderCount: 4},
		{AccountID: 23, AccountName: "Wonka", LastOrderDate: asOf.AddDate(0, -7, 0), LifetimeValue: decimal.NewFromInt(8000), OrderCount: 9},
		{AccountID: 24, AccountName: "Recente", LastOrderDate: asOf.AddDate(0, -1, 0), LifetimeValue: decimal.NewFromInt(90000), OrderCount: 50},
		{AccountID: 25, AccountName: "Pequena", LastOrderDate: asOf.AddDate(0, -8, 0), LifetimeValue: decimal.NewFromInt(4999), OrderCount: 2},
	}
}

func pastDueFixture() []domain.PastDueCandidate {
	return []domain.PastDueCandidate{
		{AccountID: 31, AccountName: "Cyberdyne", Aging30: decimal.NewFromInt(200), Aging60: decimal.NewFromInt(100)},
		{AccountID: 32, AccountName: "Vandelay", Aging30: decimal.NewFromInt(1000), Aging90: decimal.NewFromFloat(250.5)},
		{AccountID: 33, AccountName: "Zerada"},
	}
}

func hotStreakFixture() []domain.HotStreakCandidate {
	return []domain.HotStreakCandidate{
		{AccountID: 41, AccountName: "Acme Corp", RecentCount: 5, PriorCount: 2, RecentSpend: decimal.NewFromInt(1500)},
		{AccountID: 42, AccountName: "Globex", RecentCount: 6, PriorCount: 3, RecentSpend: decimal.NewFromInt(3000)},
		{AccountID: 43, AccountName: "Stark", RecentCount: 8, PriorCount: 2, RecentSpend: decimal.NewFromInt(1200)},
		{AccountID: 44, AccountName: "Estável", RecentCount: 3, PriorCount: 3, RecentSpend: decimal.NewFromInt(9000)},
		{AccountID: 45, AccountName: "Barata", RecentCount: 9, PriorCount: 1, RecentSpend: decimal.NewFromInt(999)},
	}
}

func estimateFixture(asOf time.Time) []domain.EstimateCandidate {
	return []domain.EstimateCandidate{
		{AccountID: 51, AccountName: "Massive", EstimateNumber: "E-1", CreatedAt: asOf.AddDate(0, 0, -5), Amount: decimal.NewFromInt(4000)},
		{AccountID: 52, AccountName: "Dunder", EstimateNumber: "E-2", CreatedAt: asOf.AddDate(0, 0, -1), Amount: decimal.NewFromInt(2600), JobDescription: "Banners"},
		{AccountID: 53, AccountName: "Aperture", EstimateNumber: "E-3", CreatedAt: asOf.AddDate(0, 0, -1), Amount: decimal.NewFromInt(9000)},
		{AccountID: 54, AccountName: "Baixo", EstimateNumber: "E-4", CreatedAt: asOf, Amount: decimal.NewFromInt(100)},
	}
}

func itemNames(block *domain.InsightBlock) []string {
	names := make([]string, 0, len(block.Items))
	for _, item := range block.Items {
		names = append(names, item.Name)
	}
	return names
}

func TestHotStreakGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	generator := &hotStreakGenerator{thresholds: DefaultThresholds()}
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		excluded domain.ExclusionSet
		setup    func()
		validate func(t *testing.T, block *domain.InsightBlock)
	}{
		{
			name:     "Conta única qualificada gera o item esperado",
			excluded: domain.NewExclusionSet(),
			setup: func() {
				mockRepo.EXPECT().
					HotStreakAccounts(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q domain.HotStreakQuery) ([]domain.HotStreakCandidate, error) {
						assert.Equal(t, "2023-10-16", q.RecentFrom.Format(time.DateOnly))
						assert.Equal(t, "2023-07-16", q.PriorFrom.Format(time.DateOnly))
						assert.Equal(t, asOf, q.Until)
						assert.True(t, q.MinRecentSpend.Equal(decimal.NewFromInt(1000)))
						return hotStreakFixture()[:1], nil
					})
			},
			validate: func(t *testing.T, block *domain.InsightBlock) {
				require.NotNil(t, block)
				require.Len(t, block.Items, 1)
				assert.Equal(t, domain.InsightHotStreakAccounts, block.Type)
				assert.Equal(t, "Acme Corp", block.Items[0].Name)
				assert.Equal(t, "5 orders (was 2)", block.Items[0].Detail)
				assert.Equal(t, "$1,500 recent", block.Items[0].Value)
				assert.Equal(t, int64(41), *block.Items[0].AccountID)
			},
		},
		{
			name:     "Ordena por ganho de frequência e depois por gasto",
			excluded: domain.NewExclusionSet(),
			setup: func() {
				mockRepo.EXPECT().
					HotStreakAccounts(gomock.Any(), gomock.Any()).
					Return(hotStreakFixture(), nil)
			},
			validate: func(t *testing.T, block *domain.InsightBlock) {
				require.NotNil(t, block)
				assert.Equal(t, []string{"Stark", "Globex", "Acme Corp"}, itemNames(block))
			},
		},
		{
			name:     "Conta excluída nunca aparece",
			excluded: domain.NewExclusionSet([]int64{43}),
			setup: func() {
				mockRepo.EXPECT().
					HotStreakAccounts(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q domain.HotStreakQuery) ([]domain.HotStreakCandidate, error) {
						assert.Equal(t, []int64{43}, q.ExcludedIDs)
						return hotStreakFixture(), nil
					})
			},
			validate: func(t *testing.T, block *domain.InsightBlock) {
				require.NotNil(t, block)
				assert.Equal(t, []string{"Globex", "Acme Corp"}, itemNames(block))
			},
		},
		{
			name:     "Nenhum candidato retorna nil",
			excluded: domain.NewExclusionSet(),
			setup: func() {
				mockRepo.EXPECT().
					HotStreakAccounts(gomock.Any(), gomock.Any()).
					Return([]domain.HotStreakCandidate{}, nil)
			},
			validate: func(t *testing.T, block *domain.InsightBlock) {
				assert.Nil(t, block)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			block, err := generator.Generate(context.Background(), mockRepo, asOf, tt.excluded)
			require.NoError(t, err)
			tt.validate(t, block)
		})
	}
}

func TestAnniversaryGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		AnniversaryReorders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.AnniversaryQuery) ([]domain.AnniversaryCandidate, error) {
			assert.Equal(t, "2023-02-16", q.PickupFrom.Format(time.DateOnly))
			assert.Equal(t, "2023-03-16", q.PickupTo.Format(time.DateOnly))
			assert.True(t, q.MinAmount.Equal(decimal.NewFromInt(500)))
			assert.Equal(t, candidatePoolSize, q.Limit)
			return anniversaryFixture(asOf), nil
		})

	block, err := (&anniversaryGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, asOf, domain.NewExclusionSet())
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Equal(t, []string{"Umbrella", "Initech"}, itemNames(block))
	assert.Equal(t, "$2,400", block.Items[0].Value)
	assert.Equal(t, "$900", block.Items[1].Value)
	assert.Contains(t, block.Items[1].Detail, "Brochures")
}

func TestLapsedGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		LapsedAccounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.LapsedQuery) ([]domain.LapsedCandidate, error) {
			assert.Equal(t, "2023-07-16", q.LastOrderBefore.Format(time.DateOnly))
			assert.Equal(t, "2022-01-16", q.LastOrderAfter.Format(time.DateOnly))
			return lapsedFixture(asOf), nil
		})

	block, err := (&lapsedGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, asOf, domain.NewExclusionSet())
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Equal(t, []string{"Wonka", "Tyrell", "Soylent"}, itemNames(block))
	assert.Equal(t, "$8,000 lifetime", block.Items[0].Value)
	assert.Equal(t, "Last order Jun 16, 2023 (9 orders)", block.Items[0].Detail)
}

func TestPastDueGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)

	mockRepo.EXPECT().
		PastDueAccounts(gomock.Any(), gomock.Any()).
		Return(pastDueFixture(), nil)

	block, err := (&pastDueGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, time.Now(), domain.NewExclusionSet())
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Equal(t, []string{"Vandelay", "Cyberdyne"}, itemNames(block))
	assert.Equal(t, "$1,250 past due", block.Items[0].Value)
	assert.Equal(t, "30d $1,000 / 60d $0 / 90d $250", block.Items[0].Detail)
}

func TestHighValueEstimateGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	asOf := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		HighValueEstimates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.HighValueEstimateQuery) ([]domain.EstimateCandidate, error) {
			assert.Equal(t, "2023-12-17", q.CreatedSince.Format(time.DateOnly))
			return estimateFixture(asOf), nil
		})

	block, err := (&highValueEstimateGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, asOf, domain.NewExclusionSet())
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Equal(t, []string{"Aperture", "Dunder", "Massive"}, itemNames(block))
	assert.Equal(t, "$9,000", block.Items[0].Value)
	assert.Equal(t, "Estimate #E-2 from Jan 15, 2024: Banners", block.Items[1].Detail)
}

func TestGenerators_AtMostFiveItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)

	candidates := make([]domain.PastDueCandidate, 0, 8)
	for i := 1; i <= 8; i++ {
		candidates = append(candidates, domain.PastDueCandidate{
			AccountID:   int64(i),
			AccountName: fmt.Sprintf("Conta %d", i),
			Aging30:     decimal.NewFromInt(int64(i * 100)),
		})
	}

	mockRepo.EXPECT().PastDueAccounts(gomock.Any(), gomock.Any()).Return(candidates, nil)

	block, err := (&pastDueGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, time.Now(), domain.NewExclusionSet())
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Len(t, block.Items, domain.MaxInsightItems)
	assert.Equal(t, "Conta 8", block.Items[0].Name)
}

func TestGenerators_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrintSmithRepository(ctrl)
	mockRepo.EXPECT().LapsedAccounts(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	block, err := (&lapsedGenerator{thresholds: DefaultThresholds()}).
		Generate(context.Background(), mockRepo, time.Now(), domain.NewExclusionSet())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, block)
}
