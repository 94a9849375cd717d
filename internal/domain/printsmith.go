package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID   int64
	Name string
}

// Invoice é uma venda concluída (retirada) no PrintSmith
type Invoice struct {
	InvoiceNumber      string
	AccountID          int64
	AccountName        string
	TakenBy            string
	SalesRep           string
	Amount             decimal.Decimal
	WebOrderExternalID *string
	JobDescription     string
}

// Estimate é um orçamento criado no PrintSmith
type Estimate struct {
	EstimateNumber string
	AccountID      int64
	AccountName    string
	TakenBy        string
	Amount         decimal.Decimal
	JobDescription string
}

// PerformanceRow agrega as faturas em aberto de um PM (takenby) ou BD (salesrep)
type PerformanceRow struct {
	Name      string
	OpenCount int
	OpenTotal decimal.Decimal
}

// SalesSummary resume as vendas de um intervalo de datas
type SalesSummary struct {
	Revenue          decimal.Decimal
	SalesCount       int
	EstimatesCreated int
	NewCustomers     int
}

// PeriodMetrics reúne os resumos do período, do mês e do ano
type PeriodMetrics struct {
	Period SalesSummary
	MTD    SalesSummary
	YTD    SalesSummary
}

type AnniversaryQuery struct {
	PickupFrom  time.Time
	PickupTo    time.Time
	MinAmount   decimal.Decimal
	ExcludedIDs []int64
	Limit       int
}

type AnniversaryCandidate struct {
	AccountID      int64
	AccountName    string
	InvoiceNumber  string
	PickupDate     time.Time
	Amount         decimal.Decimal
	JobDescription string
}

type LapsedQuery struct {
	MinLifetimeValue decimal.Decimal
	LastOrderBefore  time.Time
	LastOrderAfter   time.Time
	ExcludedIDs      []int64
	Limit            int
}

type LapsedCandidate struct {
	AccountID     int64
	AccountName   string
	LastOrderDate time.Time
	LifetimeValue decimal.Decimal
	OrderCount    int
}

type PastDueQuery struct {
	MinBalance  decimal.Decimal
	ExcludedIDs []int64
	Limit       int
}

type PastDueCandidate struct {
	AccountID   int64
	AccountName string
	Aging30     decimal.Decimal
	Aging60     decimal.Decimal
	Aging90     decimal.Decimal
}

// Total soma os saldos vencidos de 30, 60 e 90 dias
func (c PastDueCandidate) Total() decimal.Decimal {
	return c.Aging30.Add(c.Aging60).Add(c.Aging90)
}

type HotStreakQuery struct {
	PriorFrom      time.Time
	RecentFrom     time.Time
	Until          time.Time
	MinRecentSpend decimal.Decimal
	ExcludedIDs    []int64
	Limit          int
}

type HotStreakCandidate struct {
	AccountID   int64
	AccountName string
	RecentCount int
	PriorCount  int
	RecentSpend decimal.Decimal
}

// FrequencyDelta é o ganho de pedidos da janela recente sobre a anterior
func (c HotStreakCandidate) FrequencyDelta() int {
	return c.RecentCount - c.PriorCount
}

type HighValueEstimateQuery struct {
	MinAmount    decimal.Decimal
	CreatedSince time.Time
	ExcludedIDs  []int64
	Limit        int
}

type EstimateCandidate struct {
	AccountID      int64
	AccountName    string
	EstimateNumber string
	CreatedAt      time.Time
	Amount         decimal.Decimal
	JobDescription string
}
