package digesting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

const unknownAccount = "Unknown"

// HighlightsInput são as linhas já consultadas que alimentam tabelas e destaques
type HighlightsInput struct {
	Invoices  []domain.Invoice
	Estimates []domain.Estimate
	PMRows    []domain.PerformanceRow
	BDRows    []domain.PerformanceRow
}

// Assembler monta o payload final. Não entrega nem persiste nada.
type Assembler struct {
	policy Policy
}

func NewAssembler(policy Policy) *Assembler {
	return &Assembler{policy: policy}
}

func (a *Assembler) Assemble(
	period domain.ReportingPeriod,
	metrics domain.PeriodMetrics,
	input HighlightsInput,
	excluded domain.ExclusionSet,
	insights []domain.InsightBlock,
) *domain.DigestPayload {
	invoices := sortedInvoices(input.Invoices)
	estimates := sortedEstimates(input.Estimates)
	pmRows := sortedPerformance(input.PMRows)
	bdRows := sortedPerformance(input.BDRows)

	invoiceTable := buildInvoiceTable(invoices)
	highlights := a.buildHighlights(invoices, estimates, excluded)
	pmPerformance := toPerformance(pmRows)
	bdPerformance := toPerformance(bdRows)

	if insights == nil {
		insights = make([]domain.InsightBlock, 0)
	}

	endDate := period.EndDate.Format(time.DateOnly)

	return &domain.DigestPayload{
		ExportDate: endDate,
		Date:       endDate,
		Period: domain.PeriodInfo{
			StartDate:         period.StartDate.Format(time.DateOnly),
			EndDate:           endDate,
			Days:              period.Days(),
			IsMultiDayCatchup: period.IsMultiDayCatchup,
		},
		Metrics: domain.Metrics{
			DailyRevenue:                invoiceTable.TotalRevenue,
			DailySalesCount:             invoiceTable.InvoiceCount,
			DailyEstimatesCreated:       len(estimates),
			DailyNewCustomers:           metrics.Period.NewCustomers,
			MonthToDateRevenue:          utils.RoundWithTwoDecimalPlace(metrics.MTD.Revenue),
			MonthToDateSalesCount:       metrics.MTD.SalesCount,
			MonthToDateEstimatesCreated: metrics.MTD.EstimatesCreated,
			MonthToDateNewCustomers:     metrics.MTD.NewCustomers,
			YearToDateRevenue:           utils.RoundWithTwoDecimalPlace(metrics.YTD.Revenue),
			YearToDateSalesCount:        metrics.YTD.SalesCount,
			YearToDateEstimatesCreated:  metrics.YTD.EstimatesCreated,
			YearToDateNewCustomers:      metrics.YTD.NewCustomers,
		},
		YesterdayInvoices:  invoiceTable,
		YesterdayEstimates: a.buildEstimateTable(estimates),
		PMTable:            toPMTable(pmRows),
		BDTable:            toBDTable(bdRows),
		MTDMetrics:         toSummaryMetrics(metrics.MTD),
		YTDMetrics:         toSummaryMetrics(metrics.YTD),
		Highlights:         highlights,
		BDPerformance:      bdPerformance,
		PMPerformance:      pmPerformance,
		BiggestOrder:       a.biggestOrder(invoices),
		TopPM:              firstPerformance(pmPerformance),
		TopBD:              firstPerformance(bdPerformance),
		Insights:           insights,
		ShownInsights:      buildShownRecord(endDate, highlights, insights),
	}
}

func sortedInvoices(invoices []domain.Invoice) []domain.Invoice {
	sorted := append([]domain.Invoice(nil), invoices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted
}

func sortedEstimates(estimates []domain.Estimate) []domain.Estimate {
	sorted := append([]domain.Estimate(nil), estimates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted
}

func sortedPerformance(rows []domain.PerformanceRow) []domain.PerformanceRow {
	sorted := append([]domain.PerformanceRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OpenTotal.GreaterThan(sorted[j].OpenTotal)
	})
	return sorted
}

func buildInvoiceTable(invoices []domain.Invoice) domain.InvoiceTable {
	total := decimal.Zero
	rows := make([]domain.InvoiceRow, 0, len(invoices))

	for _, invoice := range invoices {
		total = total.Add(invoice.Amount)
		rows = append(rows, domain.InvoiceRow{
			InvoiceNumber:      invoice.InvoiceNumber,
			AccountID:          invoice.AccountID,
			AccountName:        invoice.AccountName,
			TakenBy:            invoice.TakenBy,
			SalesRep:           invoice.SalesRep,
			AdjustedAmountDue:  utils.RoundWithTwoDecimalPlace(invoice.Amount),
			WebOrderExternalID: invoice.WebOrderExternalID,
			JobDescription:     invoice.JobDescription,
		})
	}

	return domain.InvoiceTable{
		Invoices:     rows,
		TotalRevenue: utils.RoundWithTwoDecimalPlace(total),
		InvoiceCount: len(invoices),
	}
}

func (a *Assembler) buildEstimateTable(estimates []domain.Estimate) domain.EstimateTable {
	limit := a.policy.EstimateTableSize
	if limit <= 0 || limit > len(estimates) {
		limit = len(estimates)
	}

	rows := make([]domain.EstimateRow, 0, limit)
	for _, estimate := range estimates[:limit] {
		rows = append(rows, domain.EstimateRow{
			InvoiceNumber:     estimate.EstimateNumber,
			AccountID:         estimate.AccountID,
			AccountName:       estimate.AccountName,
			TakenBy:           estimate.TakenBy,
			AdjustedAmountDue: utils.RoundWithTwoDecimalPlace(estimate.Amount),
			JobDescription:    estimate.JobDescription,
		})
	}

	return domain.EstimateTable{
		EstimateCount: len(estimates),
		TopEstimates:  rows,
	}
}

// buildHighlights seleciona os maiores pedidos e orçamentos, pulando contas excluídas
func (a *Assembler) buildHighlights(invoices []domain.Invoice, estimates []domain.Estimate, excluded domain.ExclusionSet) []domain.Highlight {
	highlights := make([]domain.Highlight, 0, a.policy.TopInvoices+a.policy.TopEstimates)

	count := 0
	for _, invoice := range invoices {
		if count == a.policy.TopInvoices {
			break
		}
		if excluded.Contains(invoice.AccountID) {
			continue
		}

		highlights = append(highlights, domain.Highlight{
			Type:        domain.HighlightInvoice,
			Description: describe("Completed order for", invoice.AccountName, invoice.JobDescription, invoice.Amount),
			AccountID:   invoice.AccountID,
			AccountName: invoice.AccountName,
			Amount:      utils.RoundWithTwoDecimalPlace(invoice.Amount),
		})
		count++
	}

	count = 0
	for _, estimate := range estimates {
		if count == a.policy.TopEstimates {
			break
		}
		if excluded.Contains(estimate.AccountID) {
			continue
		}

		highlights = append(highlights, domain.Highlight{
			Type:        domain.HighlightEstimate,
			Description: describe("New estimate for", estimate.AccountName, estimate.JobDescription, estimate.Amount),
			AccountID:   estimate.AccountID,
			AccountName: estimate.AccountName,
			Amount:      utils.RoundWithTwoDecimalPlace(estimate.Amount),
		})
		count++
	}

	return highlights
}

func describe(prefix, accountName, jobDescription string, amount decimal.Decimal) string {
	if accountName == "" {
		accountName = unknownAccount
	}

	if jobDescription == "" {
		return fmt.Sprintf("%s %s - %s", prefix, accountName, utils.FormatCurrency(amount))
	}

	return fmt.Sprintf("%s %s (%s) - %s", prefix, accountName, jobDescription, utils.FormatCurrency(amount))
}

// biggestOrder ignora apenas as exclusões permanentes: o maior pedido não conta como destaque
func (a *Assembler) biggestOrder(invoices []domain.Invoice) *domain.BiggestOrder {
	permanent := a.policy.PermanentExclusions()

	for _, invoice := range invoices {
		if permanent.Contains(invoice.AccountID) {
			continue
		}

		return &domain.BiggestOrder{
			InvoiceNumber:   invoice.InvoiceNumber,
			AccountID:       invoice.AccountID,
			AccountName:     invoice.AccountName,
			Description:     invoice.JobDescription,
			Amount:          utils.RoundWithTwoDecimalPlace(invoice.Amount),
			FormattedAmount: utils.FormatCurrency(invoice.Amount),
		}
	}

	return nil
}

func toPerformance(rows []domain.PerformanceRow) []domain.Performance {
	performance := make([]domain.Performance, 0, len(rows))
	for _, row := range rows {
		performance = append(performance, domain.Performance{
			Name:            row.Name,
			OrdersCompleted: row.OpenCount,
			Revenue:         utils.RoundWithTwoDecimalPlace(row.OpenTotal),
		})
	}
	return performance
}

func firstPerformance(performance []domain.Performance) *domain.Performance {
	if len(performance) == 0 {
		return nil
	}
	first := performance[0]
	return &first
}

func toPMTable(rows []domain.PerformanceRow) []domain.PMOpenRow {
	table := make([]domain.PMOpenRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, domain.PMOpenRow{
			PMName:           row.Name,
			OpenCount:        row.OpenCount,
			OpenTotalDollars: utils.RoundWithTwoDecimalPlace(row.OpenTotal),
		})
	}
	return table
}

func toBDTable(rows []domain.PerformanceRow) []domain.BDOpenRow {
	table := make([]domain.BDOpenRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, domain.BDOpenRow{
			BDName:           row.Name,
			OpenCount:        row.OpenCount,
			OpenTotalDollars: utils.RoundWithTwoDecimalPlace(row.OpenTotal),
		})
	}
	return table
}

func toSummaryMetrics(summary domain.SalesSummary) domain.SummaryMetrics {
	return domain.SummaryMetrics{
		Revenue:          utils.RoundWithTwoDecimalPlace(summary.Revenue),
		SalesCount:       summary.SalesCount,
		EstimatesCreated: summary.EstimatesCreated,
		NewCustomers:     summary.NewCustomers,
	}
}

// buildShownRecord une as contas dos destaques e dos itens de insight e os tipos efetivamente emitidos
func buildShownRecord(date string, highlights []domain.Highlight, insights []domain.InsightBlock) domain.ShownRecord {
	ids := make(map[int64]struct{})
	names := make(map[string]struct{})
	types := make([]domain.InsightType, 0, len(insights))
	seenTypes := make(map[domain.InsightType]struct{})

	for _, highlight := range highlights {
		if highlight.AccountID != 0 {
			ids[highlight.AccountID] = struct{}{}
		}
		if highlight.AccountName != "" {
			names[highlight.AccountName] = struct{}{}
		}
	}

	for _, block := range insights {
		if _, ok := seenTypes[block.Type]; !ok {
			seenTypes[block.Type] = struct{}{}
			types = append(types, block.Type)
		}

		for _, item := range block.Items {
			if item.AccountID != nil {
				ids[*item.AccountID] = struct{}{}
			}
			if item.Name != "" {
				names[item.Name] = struct{}{}
			}
		}
	}

	accountIDs := make([]int64, 0, len(ids))
	for id := range ids {
		accountIDs = append(accountIDs, id)
	}
	sort.Slice(accountIDs, func(i, j int) bool { return accountIDs[i] < accountIDs[j] })

	accountNames := make([]string, 0, len(names))
	for name := range names {
		accountNames = append(accountNames, name)
	}
	sort.Strings(accountNames)

	return domain.ShownRecord{
		Date:         date,
		AccountIDs:   accountIDs,
		AccountNames: accountNames,
		InsightTypes: types,
	}
}
