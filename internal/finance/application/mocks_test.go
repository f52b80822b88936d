package application

import (
	"context"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type mockAccountRepository struct {
	accounts  []domain.Account
	nextID    int
	createErr error
	deleted   []int
}

func (m *mockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	account.ID = m.nextID
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *mockAccountRepository) FindByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, a := range m.accounts {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *mockAccountRepository) FindByName(ctx context.Context, userID, name string) (*domain.Account, error) {
	for _, a := range m.accounts {
		if a.UserID == userID && a.AccountName == name {
			account := a
			return &account, nil
		}
	}
	return nil, financeErrors.ErrAccountNotFound
}

func (m *mockAccountRepository) Delete(ctx context.Context, accountID int) (int64, error) {
	for i, a := range m.accounts {
		if a.ID == accountID {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			m.deleted = append(m.deleted, accountID)
			return 1, nil
		}
	}
	return 0, nil
}

type mockCategoryRepository struct {
	categories []domain.Category
	nextID     int
	updated    []domain.Category
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.categories = append(m.categories, *category)
	return nil
}

func (m *mockCategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *mockCategoryRepository) FindByNickname(ctx context.Context, userID, nickname string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.UserID == userID && c.Nickname == nickname {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	for i, c := range m.categories {
		if c.ID == category.ID {
			m.categories[i] = *category
		}
	}
	m.updated = append(m.updated, *category)
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID int) (int64, error) {
	for i, c := range m.categories {
		if c.ID == categoryID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockTransactionRepository struct {
	transactions []domain.Transaction
	nextID       int
}

func (m *mockTransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	m.nextID++
	transaction.ID = m.nextID
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *mockTransactionRepository) FindByID(ctx context.Context, userID string, transactionID int) (*domain.Transaction, error) {
	for _, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			transaction := t
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *mockTransactionRepository) FindByCategory(ctx context.Context, userID string, categoryID int) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, t := range m.transactions {
		if t.UserID == userID && t.CategoryID == categoryID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (m *mockTransactionRepository) FindByAccount(ctx context.Context, userID string, accountID int) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, t := range m.transactions {
		if t.UserID == userID && t.AccountID == accountID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (m *mockTransactionRepository) Delete(ctx context.Context, userID string, transactionID int) (int64, error) {
	for i, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
