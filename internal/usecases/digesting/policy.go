package digesting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/domain"
)

// Thresholds são os limites de qualificação dos geradores de insight
type Thresholds struct {
	AnniversaryMinAmount        decimal.Decimal
	LapsedMinLifetimeValue      decimal.Decimal
	LapsedAfterMonths           int
	LapsedMaxMonths             int
	PastDueMinBalance           decimal.Decimal
	HotStreakWindowMonths       int
	HotStreakMinRecentSpend     decimal.Decimal
	HighValueEstimateMinAmount  decimal.Decimal
	HighValueEstimateMaxAgeDays int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		AnniversaryMinAmount:        decimal.NewFromInt(500),
		LapsedMinLifetimeValue:      decimal.NewFromInt(5000),
		LapsedAfterMonths:           6,
		LapsedMaxMonths:             24,
		PastDueMinBalance:           decimal.Zero,
		HotStreakWindowMonths:       3,
		HotStreakMinRecentSpend:     decimal.NewFromInt(1000),
		HighValueEstimateMinAmount:  decimal.NewFromInt(2500),
		HighValueEstimateMaxAgeDays: 30,
	}
}

// Policy reúne toda a configuração imutável de uma exportação.
// É montada uma vez na inicialização e repassada explicitamente.
type Policy struct {
	Location           *time.Location
	ExcludedAccountIDs []int64
	ValidPMs           []string
	ValidBDs           []string
	LookbackDays       int
	TopInvoices        int
	TopEstimates       int
	EstimateTableSize  int
	Rotation           domain.RotationSchedule
	Thresholds         Thresholds
}

func DefaultPolicy() Policy {
	return Policy{
		Location:           time.UTC,
		ExcludedAccountIDs: []int64{20960},
		ValidPMs:           []string{"Jim", "Steve", "Shelley", "Ellie", "Ellie Lemire"},
		ValidBDs:           []string{"House", "Paige Chamberlain", "Sean Swaim", "Mike Meyer", "Dave Tanner", "Rob Grayson", "Robert Galle"},
		LookbackDays:       14,
		TopInvoices:        3,
		TopEstimates:       2,
		EstimateTableSize:  10,
		Rotation:           domain.DefaultRotationSchedule(),
		Thresholds:         DefaultThresholds(),
	}
}

// NewPolicy monta a política a partir da configuração carregada
func NewPolicy(cfg *config.Config) (Policy, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Policy{}, fmt.Errorf("fuso horário inválido %q: %w", cfg.App.Timezone, err)
	}

	t := cfg.Thresholds

	return Policy{
		Location:           loc,
		ExcludedAccountIDs: cfg.Digest.ExcludedAccountIDs,
		ValidPMs:           cfg.Digest.ValidPMs,
		ValidBDs:           cfg.Digest.ValidBDs,
		LookbackDays:       cfg.Digest.LookbackDays,
		TopInvoices:        cfg.Digest.TopInvoices,
		TopEstimates:       cfg.Digest.TopEstimates,
		EstimateTableSize:  cfg.Digest.EstimateTableSize,
		Rotation:           domain.DefaultRotationSchedule(),
		Thresholds: Thresholds{
			AnniversaryMinAmount:        decimal.NewFromFloat(t.AnniversaryMinAmount),
			LapsedMinLifetimeValue:      decimal.NewFromFloat(t.LapsedMinLifetimeValue),
			LapsedAfterMonths:           t.LapsedAfterMonths,
			LapsedMaxMonths:             t.LapsedMaxMonths,
			PastDueMinBalance:           decimal.NewFromFloat(t.PastDueMinBalance),
			HotStreakWindowMonths:       t.HotStreakWindowMonths,
			HotStreakMinRecentSpend:     decimal.NewFromFloat(t.HotStreakMinRecentSpend),
			HighValueEstimateMinAmount:  decimal.NewFromFloat(t.HighValueEstimateMinAmount),
			HighValueEstimateMaxAgeDays: t.HighValueEstimateMaxAgeDays,
		},
	}, nil
}

// PermanentExclusions são as contas que nunca aparecem em destaques ou insights
func (p Policy) PermanentExclusions() domain.ExclusionSet {
	return domain.NewExclusionSet(p.ExcludedAccountIDs)
}
