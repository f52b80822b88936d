package application

import (
	"context"
	"time"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetCategory(ctx context.Context, userID, nickname string) (*domain.Category, error)
}

type AccountServiceInterface interface {
	GetAccount(ctx context.Context, userID, name string) (*domain.Account, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
	accountService  AccountServiceInterface
	now             func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface, accountService AccountServiceInterface) *TransactionService {
	return &TransactionService{
		repo:            repo,
		categoryService: categoryService,
		accountService:  accountService,
		now:             time.Now,
	}
}

func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// CreateTransaction books a transaction dated now against the named category and account.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req domain.ClientTransaction) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryService.GetCategory(ctx, userID, req.CategoryName)
	if err != nil {
		return nil, err
	}
	account, err := s.accountService.GetAccount(ctx, userID, req.AccountName)
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		UserID:          userID,
		CategoryID:      category.ID,
		AccountID:       account.ID,
		Amount:          req.Amount.Round(2),
		Notes:           req.Notes,
		TransactionDate: domain.FormatTransactionDate(s.now()),
	}
	if err := s.repo.Save(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID string, transactionID int) error {
	if transactionID <= 0 {
		return financeErrors.ErrInvalidTransaction
	}
	if _, err := s.repo.FindByID(ctx, userID, transactionID); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (s *TransactionService) GetCategoryTransactions(ctx context.Context, userID, nickname string) ([]domain.Transaction, error) {
	category, err := s.categoryService.GetCategory(ctx, userID, nickname)
	if err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByCategory(ctx, userID, category.ID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetAccountTransactions(ctx context.Context, userID, name string) ([]domain.Transaction, error) {
	account, err := s.accountService.GetAccount(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByAccount(ctx, userID, account.ID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
