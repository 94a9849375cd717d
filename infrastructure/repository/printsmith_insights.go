package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/printsmith-digest/internal/domain"
)

func anniversaryReordersQuery(q domain.AnniversaryQuery) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ib.accountid",
			"COALESCE(ib.accountname, '')",
			"i.invoicenumber",
			"DATE(i.pickupdate) AS pickup_date",
			"COALESCE(ib.adjustedamountdue, 0) AS amount",
			"COALESCE(ib.description, '')",
		).
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(dateBetween("i.pickupdate", q.PickupFrom, q.PickupTo)).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		Where(squirrel.NotEq{"ib.accountid": nil}).
		Where(squirrel.GtOrEq{"ib.adjustedamountdue": q.MinAmount}).
		Where(notExcluded("ib.accountid", q.ExcludedIDs)).
		OrderBy("amount DESC", "ib.accountid ASC").
		Limit(uint64(q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// AnniversaryReorders busca pedidos concluídos em torno da mesma data do ano anterior
func (r *printSmithRepository) AnniversaryReorders(ctx context.Context, q domain.AnniversaryQuery) ([]domain.AnniversaryCandidate, error) {
	rows, err := r.query(ctx, anniversaryReordersQuery(q))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar aniversários de pedidos: %w", err)
	}

	candidates, err := scanAll(rows, func(rows *sql.Rows) (domain.AnniversaryCandidate, error) {
		var c domain.AnniversaryCandidate
		err := rows.Scan(&c.AccountID, &c.AccountName, &c.InvoiceNumber, &c.PickupDate, &c.Amount, &c.JobDescription)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear aniversários de pedidos: %w", err)
	}

	return candidates, nil
}

func lapsedAccountsQuery(q domain.LapsedQuery) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ib.accountid",
			"COALESCE(MAX(ib.accountname), '')",
			"MAX(DATE(i.pickupdate)) AS last_order_date",
			"COALESCE(SUM(ib.adjustedamountdue), 0) AS lifetime_value",
			"COUNT(*) AS order_count",
		).
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		Where(squirrel.NotEq{"ib.accountid": nil}).
		Where(notExcluded("ib.accountid", q.ExcludedIDs)).
		GroupBy("ib.accountid").
		Having("COALESCE(SUM(ib.adjustedamountdue), 0) >= ?", q.MinLifetimeValue).
		Having("MAX(DATE(i.pickupdate)) < ?", q.LastOrderBefore.Format(time.DateOnly)).
		Having("MAX(DATE(i.pickupdate)) >= ?", q.LastOrderAfter.Format(time.DateOnly)).
		OrderBy("last_order_date DESC", "lifetime_value DESC", "ib.accountid ASC").
		Limit(uint64(q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// LapsedAccounts busca contas valiosas que pararam de comprar
func (r *printSmithRepository) LapsedAccounts(ctx context.Context, q domain.LapsedQuery) ([]domain.LapsedCandidate, error) {
	rows, err := r.query(ctx, lapsedAccountsQuery(q))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contas inativas: %w", err)
	}

	candidates, err := scanAll(rows, func(rows *sql.Rows) (domain.LapsedCandidate, error) {
		var c domain.LapsedCandidate
		err := rows.Scan(&c.AccountID, &c.AccountName, &c.LastOrderDate, &c.LifetimeValue, &c.OrderCount)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear contas inativas: %w", err)
	}

	return candidates, nil
}

const pastDueTotal = "(COALESCE(a.aging30, 0) + COALESCE(a.aging60, 0) + COALESCE(a.aging90, 0))"

func pastDueAccountsQuery(q domain.PastDueQuery) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"a.id",
			"COALESCE(a.title, '')",
			"COALESCE(a.aging30, 0)",
			"COALESCE(a.aging60, 0)",
			"COALESCE(a.aging90, 0)",
		).
		From(accountTable).
		Where(squirrel.Eq{"a.isdeleted": false}).
		Where(squirrel.Expr(pastDueTotal+" > ?", q.MinBalance)).
		Where(notExcluded("a.id", q.ExcludedIDs)).
		OrderBy(pastDueTotal+" DESC", "a.id ASC").
		Limit(uint64(q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// PastDueAccounts busca contas com saldo vencido
func (r *printSmithRepository) PastDueAccounts(ctx context.Context, q domain.PastDueQuery) ([]domain.PastDueCandidate, error) {
	rows, err := r.query(ctx, pastDueAccountsQuery(q))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contas vencidas: %w", err)
	}

	candidates, err := scanAll(rows, func(rows *sql.Rows) (domain.PastDueCandidate, error) {
		var c domain.PastDueCandidate
		err := rows.Scan(&c.AccountID, &c.AccountName, &c.Aging30, &c.Aging60, &c.Aging90)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear contas vencidas: %w", err)
	}

	return candidates, nil
}

func hotStreakAccountsQuery(q domain.HotStreakQuery) squirrel.SelectBuilder {
	recentFrom := q.RecentFrom.Format(time.DateOnly)

	return squirrel.
		Select(
			"ib.accountid",
			"COALESCE(MAX(ib.accountname), '')",
		).
		Column("COUNT(*) FILTER (WHERE DATE(i.pickupdate) >= ?) AS recent_count", recentFrom).
		Column("COUNT(*) FILTER (WHERE DATE(i.pickupdate) < ?) AS prior_count", recentFrom).
		Column("COALESCE(SUM(ib.adjustedamountdue) FILTER (WHERE DATE(i.pickupdate) >= ?), 0) AS recent_spend", recentFrom).
		From(invoiceTable).
		Join(invoiceBaseJoinI).
		Where(dateBetween("i.pickupdate", q.PriorFrom, q.Until)).
		Where(squirrel.Eq{"i.onpendinglist": false}).
		Where(activeInvoiceBase()).
		Where(squirrel.NotEq{"ib.accountid": nil}).
		Where(notExcluded("ib.accountid", q.ExcludedIDs)).
		GroupBy("ib.accountid").
		Having("COUNT(*) FILTER (WHERE DATE(i.pickupdate) >= ?) > COUNT(*) FILTER (WHERE DATE(i.pickupdate) < ?)", recentFrom, recentFrom).
		Having("COALESCE(SUM(ib.adjustedamountdue) FILTER (WHERE DATE(i.pickupdate) >= ?), 0) >= ?", recentFrom, q.MinRecentSpend).
		OrderByClause("COUNT(*) FILTER (WHERE DATE(i.pickupdate) >= ?) - COUNT(*) FILTER (WHERE DATE(i.pickupdate) < ?) DESC", recentFrom, recentFrom).
		OrderBy("recent_spend DESC", "ib.accountid ASC").
		Limit(uint64(q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// HotStreakAccounts busca contas que aumentaram a frequência de pedidos
func (r *printSmithRepository) HotStreakAccounts(ctx context.Context, q domain.HotStreakQuery) ([]domain.HotStreakCandidate, error) {
	rows, err := r.query(ctx, hotStreakAccountsQuery(q))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contas em alta: %w", err)
	}

	candidates, err := scanAll(rows, func(rows *sql.Rows) (domain.HotStreakCandidate, error) {
		var c domain.HotStreakCandidate
		err := rows.Scan(&c.AccountID, &c.AccountName, &c.RecentCount, &c.PriorCount, &c.RecentSpend)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear contas em alta: %w", err)
	}

	return candidates, nil
}

func highValueEstimatesQuery(q domain.HighValueEstimateQuery) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ib.accountid",
			"COALESCE(ib.accountname, '')",
			"e.estimatenumber",
			"ib.ordereddate",
			"COALESCE(ib.adjustedamountdue, 0) AS amount",
			"COALESCE(ib.description, '')",
		).
		From(estimateTable).
		Join(invoiceBaseJoinE).
		Where(activeInvoiceBase()).
		Where(squirrel.Expr("COALESCE(e.converted, false) = false")).
		Where(squirrel.NotEq{"ib.accountid": nil}).
		Where(squirrel.Expr("DATE(ib.ordereddate) >= ?", q.CreatedSince.Format(time.DateOnly))).
		Where(squirrel.GtOrEq{"ib.adjustedamountdue": q.MinAmount}).
		Where(notExcluded("ib.accountid", q.ExcludedIDs)).
		OrderBy("ib.ordereddate DESC", "amount DESC").
		Limit(uint64(q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// HighValueEstimates busca orçamentos altos ainda não convertidos em pedido
func (r *printSmithRepository) HighValueEstimates(ctx context.Context, q domain.HighValueEstimateQuery) ([]domain.EstimateCandidate, error) {
	rows, err := r.query(ctx, highValueEstimatesQuery(q))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar orçamentos de alto valor: %w", err)
	}

	candidates, err := scanAll(rows, func(rows *sql.Rows) (domain.EstimateCandidate, error) {
		var c domain.EstimateCandidate
		err := rows.Scan(&c.AccountID, &c.AccountName, &c.EstimateNumber, &c.CreatedAt, &c.Amount, &c.JobDescription)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear orçamentos de alto valor: %w", err)
	}

	return candidates, nil
}
