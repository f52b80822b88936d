package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `trans_id, user_id, category_id, account_id, amount, notes, transaction_date`

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (user_id, category_id, account_id, amount, notes, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING trans_id`,
		transaction.UserID, transaction.CategoryID, transaction.AccountID,
		transaction.Amount, transaction.Notes, transaction.TransactionDate,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByID(ctx context.Context, userID string, transactionID int) (*domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE trans_id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(&t.ID, &t.UserID, &t.CategoryID, &t.AccountID, &t.Amount, &t.Notes, &t.TransactionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) FindByCategory(ctx context.Context, userID string, categoryID int) ([]domain.Transaction, error) {
	return r.findWhere(ctx, `user_id = $1 AND category_id = $2`, userID, categoryID)
}

func (r *TransactionRepository) FindByAccount(ctx context.Context, userID string, accountID int) ([]domain.Transaction, error) {
	return r.findWhere(ctx, `user_id = $1 AND account_id = $2`, userID, accountID)
}

func (r *TransactionRepository) findWhere(ctx context.Context, condition string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE `+condition+` ORDER BY transaction_date, trans_id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.AccountID, &t.Amount, &t.Notes, &t.TransactionDate); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Delete(ctx context.Context, userID string, transactionID int) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE trans_id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
