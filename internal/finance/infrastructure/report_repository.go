package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// FindReportRows returns every transaction of the user joined with its category's budget,
// ordered by category, then by date, then by id.
func (r *ReportRepository) FindReportRows(ctx context.Context, userID string) ([]domain.ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.nickname, c.budget, c.budget_freq, t.transaction_date, t.amount, t.notes, t.trans_id
		FROM transactions t
		INNER JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1
		ORDER BY c.category_id, t.transaction_date, t.trans_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		if err := rows.Scan(&row.CategoryNickname, &row.Budget, &row.BudgetFreq,
			&row.TransactionDate, &row.Amount, &row.Notes, &row.TransactionID); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *ReportRepository) CategoryTotals(ctx context.Context, userID string) ([]domain.NamedTotal, error) {
	return r.totals(ctx, `
		SELECT c.nickname, SUM(t.amount)
		FROM categories c
		LEFT JOIN transactions t ON t.category_id = c.category_id
		WHERE c.user_id = $1
		GROUP BY c.category_id, c.nickname
		ORDER BY c.nickname`, userID)
}

func (r *ReportRepository) AccountTotals(ctx context.Context, userID string) ([]domain.NamedTotal, error) {
	return r.totals(ctx, `
		SELECT a.account_name, SUM(t.amount)
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.account_id
		WHERE a.user_id = $1
		GROUP BY a.account_id, a.account_name
		ORDER BY a.account_name`, userID)
}

func (r *ReportRepository) totals(ctx context.Context, query string, userID string) ([]domain.NamedTotal, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.NamedTotal
	for rows.Next() {
		var total domain.NamedTotal
		if err := rows.Scan(&total.Name, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}
