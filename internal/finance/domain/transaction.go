package domain

import (
	"context"
	"time"

	"github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// TransactionDateLayout is fixed width so that stored dates sort as text in time order.
const TransactionDateLayout = "2006-01-02T15:04:05.000000000Z07:00"

func FormatTransactionDate(t time.Time) string {
	return t.UTC().Format(TransactionDateLayout)
}

type Transaction struct {
	ID              int             `json:"trans_id"`
	UserID          string          `json:"-"`
	CategoryID      int             `json:"category_id"`
	AccountID       int             `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Notes           *string         `json:"notes"`
	TransactionDate string          `json:"transaction_date"` // TransactionDateLayout, UTC
}

// ClientTransaction is what a client sends: it only knows category and account names.
type ClientTransaction struct {
	CategoryName string          `json:"category_name"`
	AccountName  string          `json:"account_name"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes"`
}

func (t *ClientTransaction) Validate() error {
	if t.CategoryName == "" {
		return errors.NewValidationError("Category name must be provided")
	}
	if t.AccountName == "" {
		return errors.NewValidationError("Account name must be provided")
	}
	return nil
}

type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, userID string, transactionID int) (*Transaction, error)
	FindByCategory(ctx context.Context, userID string, categoryID int) ([]Transaction, error)
	FindByAccount(ctx context.Context, userID string, accountID int) ([]Transaction, error)
	Delete(ctx context.Context, userID string, transactionID int) (int64, error)
}
