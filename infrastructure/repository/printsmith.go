// Package repository contém as consultas ao banco do PrintSmith
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/printsmith-digest/infrastructure/database/postgres"
	"github.com/vfg2006/printsmith-digest/internal/domain"
)

const (
	invoiceTable     = "invoice i"
	estimateTable    = "estimate e"
	accountTable     = "account a"
	invoiceBaseJoinI = "invoicebase ib ON i.id = ib.id"
	invoiceBaseJoinE = "invoicebase ib ON e.id = ib.id"
)

// PrintSmithRepository expõe as consultas de métricas e de insights.
// Todas as consultas ignoram registros excluídos ou anulados.
type PrintSmithRepository interface {
	CompletedInvoices(ctx context.Context, period domain.ReportingPeriod) ([]domain.Invoice, error)
	CreatedEstimates(ctx context.Context, period domain.ReportingPeriod) ([]domain.Estimate, error)
	OpenInvoicesByPM(ctx context.Context, names []string) ([]domain.PerformanceRow, error)
	OpenInvoicesByBD(ctx context.Context, names []string) ([]domain.PerformanceRow, error)
	SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)

	AnniversaryReorders(ctx context.Context, query domain.AnniversaryQuery) ([]domain.AnniversaryCandidate, error)
	LapsedAccounts(ctx context.Context, query domain.LapsedQuery) ([]domain.LapsedCandidate, error)
	PastDueAccounts(ctx context.Context, query domain.PastDueQuery) ([]domain.PastDueCandidate, error)
	HotStreakAccounts(ctx context.Context, query domain.HotStreakQuery) ([]domain.HotStreakCandidate, error)
	HighValueEstimates(ctx context.Context, query domain.HighValueEstimateQuery) ([]domain.EstimateCandidate, error)
}

type printSmithRepository struct {
	conn postgres.Queryer
}

func NewPrintSmithRepository(conn postgres.Queryer) PrintSmithRepository {
	return &printSmithRepository{
		conn: conn,
	}
}

func activeInvoiceBase() squirrel.Eq {
	return squirrel.Eq{"ib.isdeleted": false, "ib.voided": false}
}

func dateBetween(column string, from, to time.Time) squirrel.Sqlizer {
	return squirrel.Expr(
		fmt.Sprintf("DATE(%s) BETWEEN ? AND ?", column),
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
	)
}

// notExcluded filtra as contas excluídas; sem ids não adiciona condição
func notExcluded(column string, ids []int64) squirrel.Sqlizer {
	if len(ids) == 0 {
		return squirrel.Expr("1 = 1")
	}
	return squirrel.Expr(fmt.Sprintf("NOT (COALESCE(%s, 0) = ANY(?))", column), pq.Array(ids))
}

func completedInvoicesQuery(period domain.ReportingPeriod) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"i.invoicenumber",
			"COALESCE(ib.accountid, 0)",
			"COALESCE(ib.accountname, '')",
			"COALESCE(ib.takenby, '')",
			"COALESCE(ib.salesrep, '')",
			"COALESCE(ib.adjustedamountdue, 0)",
			"ib.weborderexternalid",
			"COALESCE(ib.description, '')",
		).
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(dateBetween("i.pickupdate", period.StartDate, period.EndDate)).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		OrderBy("ib.adjustedamountdue DESC NULLS LAST", "i.invoicenumber ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *printSmithRepository) CompletedInvoices(ctx context.Context, period domain.ReportingPeriod) ([]domain.Invoice, error) {
	sqlQuery, args, err := completedInvoicesQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de faturas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de faturas: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		var invoice domain.Invoice
		var webOrderID sql.NullString

		if err := rows.Scan(
			&invoice.InvoiceNumber,
			&invoice.AccountID,
			&invoice.AccountName,
			&invoice.TakenBy,
			&invoice.SalesRep,
			&invoice.Amount,
			&webOrderID,
			&invoice.JobDescription,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}

		if webOrderID.Valid {
			invoice.WebOrderExternalID = &webOrderID.String
		}

		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de faturas: %w", err)
	}

	return invoices, nil
}

func createdEstimatesQuery(period domain.ReportingPeriod) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"e.estimatenumber",
			"COALESCE(ib.accountid, 0)",
			"COALESCE(ib.accountname, '')",
			"COALESCE(ib.takenby, '')",
			"COALESCE(ib.adjustedamountdue, 0)",
			"COALESCE(ib.description, '')",
		).
		From(estimateTable).
		Join(invoiceBaseJoinE).
		Where(dateBetween("ib.ordereddate", period.StartDate, period.EndDate)).
		Where(activeInvoiceBase()).
		OrderBy("ib.adjustedamountdue DESC NULLS LAST", "e.estimatenumber ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *printSmithRepository) CreatedEstimates(ctx context.Context, period domain.ReportingPeriod) ([]domain.Estimate, error) {
	sqlQuery, args, err := createdEstimatesQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de orçamentos: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de orçamentos: %w", err)
	}
	defer rows.Close()

	estimates := make([]domain.Estimate, 0)
	for rows.Next() {
		var estimate domain.Estimate
		if err := rows.Scan(
			&estimate.EstimateNumber,
			&estimate.AccountID,
			&estimate.AccountName,
			&estimate.TakenBy,
			&estimate.Amount,
			&estimate.JobDescription,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear orçamento: %w", err)
		}
		estimates = append(estimates, estimate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de orçamentos: %w", err)
	}

	return estimates, nil
}

func openInvoicesQuery(column string, names []string) squirrel.SelectBuilder {
	return squirrel.
		Select(
			column,
			"COUNT(*) AS open_count",
			"COALESCE(SUM(ib.adjustedamountdue), 0) AS open_total_dollars",
		).
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(squirrel.Eq{"i.onpendinglist": true}).
		Where(activeInvoiceBase()).
		Where(squirrel.Eq{column: names}).
		GroupBy(column).
		OrderBy("open_total_dollars DESC", column+" ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *printSmithRepository) OpenInvoicesByPM(ctx context.Context, names []string) ([]domain.PerformanceRow, error) {
	return r.openInvoicesBy(ctx, "ib.takenby", names)
}

func (r *printSmithRepository) OpenInvoicesByBD(ctx context.Context, names []string) ([]domain.PerformanceRow, error) {
	return r.openInvoicesBy(ctx, "ib.salesrep", names)
}

func (r *printSmithRepository) openInvoicesBy(ctx context.Context, column string, names []string) ([]domain.PerformanceRow, error) {
	sqlQuery, args, err := openInvoicesQuery(column, names).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de faturas em aberto: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de faturas em aberto por %s: %w", column, err)
	}
	defer rows.Close()

	result := make([]domain.PerformanceRow, 0)
	for rows.Next() {
		var row domain.PerformanceRow
		if err := rows.Scan(&row.Name, &row.OpenCount, &row.OpenTotal); err != nil {
			return nil, fmt.Errorf("erro ao escanear faturas em aberto: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de faturas em aberto: %w", err)
	}

	return result, nil
}

func salesRevenueQuery(from, to time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*) AS sales_count", "COALESCE(SUM(ib.adjustedamountdue), 0) AS revenue").
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(dateBetween("i.pickupdate", from, to)).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		PlaceholderFormat(squirrel.Dollar)
}

func estimatesCountQuery(from, to time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*) AS estimates_created").
		From(estimateTable).
		Join(invoiceBaseJoinE).
		Where(dateBetween("ib.ordereddate", from, to)).
		Where(activeInvoiceBase()).
		PlaceholderFormat(squirrel.Dollar)
}

// newCustomersQuery conta as contas cuja primeira venda concluída caiu no intervalo
func newCustomersQuery(from, to time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(DISTINCT ib.accountid)").
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(dateBetween("i.pickupdate", from, to)).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		Where(squirrel.Expr(`NOT EXISTS (
			SELECT 1
			FROM invoice i2
			JOIN invoicebase ib2 ON i2.id = ib2.id
			WHERE ib2.accountid = ib.accountid
			  AND DATE(i2.pickupdate) < ?
			  AND i2.onpendinglist = false
			  AND ib2.isdeleted = false
			  AND ib2.voided = false
		)`, from.Format(time.DateOnly))).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *printSmithRepository) SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	summary := &domain.SalesSummary{}

	sqlQuery, args, err := salesRevenueQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de receita: %w", err)
	}
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&summary.SalesCount, &summary.Revenue); err != nil {
		return nil, fmt.Errorf("erro ao consultar receita: %w", err)
	}

	sqlQuery, args, err = estimatesCountQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de orçamentos criados: %w", err)
	}
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&summary.EstimatesCreated); err != nil {
		return nil, fmt.Errorf("erro ao consultar orçamentos criados: %w", err)
	}

	sqlQuery, args, err = newCustomersQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de novos clientes: %w", err)
	}
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&summary.NewCustomers); err != nil {
		return nil, fmt.Errorf("erro ao consultar novos clientes: %w", err)
	}

	return summary, nil
}

// scanAll percorre as linhas aplicando a função de leitura
func scanAll[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *printSmithRepository) query(ctx context.Context, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return rows, nil
}

