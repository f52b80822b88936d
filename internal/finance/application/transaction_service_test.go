package application

import (
	"context"
	"testing"
	"time"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	repo    *mockTransactionRepository
	service *TransactionService
}

func newTransactionFixture(t *testing.T) transactionFixture {
	t.Helper()
	ctx := context.Background()

	categories := NewCategoryService(&mockCategoryRepository{})
	require.NoError(t, categories.CreateCategory(ctx, newFoodCategory("user-1")))

	accounts := NewAccountService(&mockAccountRepository{})
	_, err := accounts.CreateAccount(ctx, "user-1", "Visa", "credit")
	require.NoError(t, err)

	repo := &mockTransactionRepository{}
	clock := time.Date(2024, time.November, 30, 18, 22, 1, 500, time.FixedZone("CET", 3600))
	service := NewTransactionService(repo, categories, accounts).WithClock(func() time.Time { return clock })
	return transactionFixture{repo: repo, service: service}
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	f := newTransactionFixture(t)
	note := "lunch"

	transaction, err := f.service.CreateTransaction(context.Background(), "user-1", domain.ClientTransaction{
		CategoryName: "Food",
		AccountName:  "Visa",
		Amount:       decimal.RequireFromString("40.456"),
		Notes:        &note,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, transaction.ID)
	assert.Equal(t, 1, transaction.CategoryID)
	assert.Equal(t, 1, transaction.AccountID)
	assert.Equal(t, "40.46", transaction.Amount.String())
	assert.Equal(t, "2024-11-30T17:22:01.000000500Z", transaction.TransactionDate)
	assert.Len(t, f.repo.transactions, 1)
}

func TestTransactionService_CreateTransactionUnknownReferences(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{CategoryName: "Fun", AccountName: "Visa"})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)

	_, err = f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{CategoryName: "Food", AccountName: "Amex"})
	assert.ErrorIs(t, err, financeErrors.ErrAccountNotFound)

	_, err = f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{AccountName: "Visa"})
	assert.True(t, financeErrors.IsValidationError(err))

	assert.Empty(t, f.repo.transactions)
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	transaction, err := f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{
		CategoryName: "Food", AccountName: "Visa", Amount: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, "user-1", 0), financeErrors.ErrInvalidTransaction)
	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, "user-2", transaction.ID), financeErrors.ErrTransactionNotFound)
	require.NoError(t, f.service.DeleteTransaction(ctx, "user-1", transaction.ID))
	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, "user-1", transaction.ID), financeErrors.ErrTransactionNotFound)
}

func TestTransactionService_ListByCategoryAndAccount(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	transactions, err := f.service.GetCategoryTransactions(ctx, "user-1", "Food")
	require.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)

	_, err = f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{
		CategoryName: "Food", AccountName: "Visa", Amount: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	transactions, err = f.service.GetCategoryTransactions(ctx, "user-1", "Food")
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	transactions, err = f.service.GetAccountTransactions(ctx, "user-1", "Visa")
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	_, err = f.service.GetAccountTransactions(ctx, "user-1", "Amex")
	assert.ErrorIs(t, err, financeErrors.ErrAccountNotFound)
}

func TestTransactionService_DatesSortAsTextWithinOneSecond(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	base := time.Date(2024, time.November, 30, 12, 0, 5, 0, time.UTC)
	offsets := []time.Duration{0, 100 * time.Millisecond, 120 * time.Millisecond, time.Second}

	var dates []string
	for _, offset := range offsets {
		at := base.Add(offset)
		f.service.WithClock(func() time.Time { return at })
		transaction, err := f.service.CreateTransaction(ctx, "user-1", domain.ClientTransaction{
			CategoryName: "Food", AccountName: "Visa", Amount: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
		dates = append(dates, transaction.TransactionDate)
	}

	assert.Equal(t, "2024-11-30T12:00:05.000000000Z", dates[0])
	assert.Equal(t, "2024-11-30T12:00:05.100000000Z", dates[1])
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
		assert.Len(t, dates[i], len(dates[0]))
	}

	for i, date := range dates {
		parsed, err := parseTransactionDate(date)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(base.Add(offsets[i])))
	}
}
