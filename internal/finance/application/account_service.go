package application

import (
	"context"
	"errors"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID, name, accountType string) (*domain.Account, error) {
	if name == "" || accountType == "" {
		return nil, financeErrors.ErrInvalidInput
	}

	_, err := s.repo.FindByName(ctx, userID, name)
	if err == nil {
		return nil, financeErrors.ErrDuplicateAccount
	}
	if !errors.Is(err, financeErrors.ErrAccountNotFound) {
		return nil, err
	}

	account := &domain.Account{
		UserID:      userID,
		AccountName: name,
		AccountType: accountType,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, userID, name string) (*domain.Account, error) {
	if name == "" {
		return nil, financeErrors.ErrInvalidInput
	}
	return s.repo.FindByName(ctx, userID, name)
}

func (s *AccountService) GetAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID, name string) error {
	account, err := s.GetAccount(ctx, userID, name)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, account.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrAccountNotFound
	}
	return nil
}
