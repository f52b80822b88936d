package domain

import "context"

type Account struct {
	ID          int    `json:"account_id"`
	UserID      string `json:"-"`
	AccountType string `json:"account_type"`
	AccountName string `json:"account_name"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByUser(ctx context.Context, userID string) ([]Account, error)
	FindByName(ctx context.Context, userID, name string) (*Account, error)
	Delete(ctx context.Context, accountID int) (int64, error)
}
