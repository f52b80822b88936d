package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO accounts (user_id, account_type, account_name) VALUES ($1, $2, $3) RETURNING account_id`,
		account.UserID, account.AccountType, account.AccountName,
	).Scan(&account.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateAccount
	}
	return err
}

func (r *AccountRepository) FindByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_id, user_id, account_type, account_name FROM accounts WHERE user_id = $1 ORDER BY account_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.UserID, &account.AccountType, &account.AccountName); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindByName(ctx context.Context, userID, name string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, user_id, account_type, account_name FROM accounts WHERE user_id = $1 AND account_name = $2`,
		userID, name,
	).Scan(&account.ID, &account.UserID, &account.AccountType, &account.AccountName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
