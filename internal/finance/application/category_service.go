package application

import (
	"context"
	"errors"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Nickname == "" || category.CategoryType == "" || category.BudgetFreq == "" {
		return financeErrors.ErrInvalidInput
	}

	if err := s.ensureNicknameFree(ctx, category.UserID, category.Nickname); err != nil {
		return err
	}
	return s.repo.Create(ctx, category)
}

func (s *CategoryService) GetCategory(ctx context.Context, userID, nickname string) (*domain.Category, error) {
	if nickname == "" {
		return nil, financeErrors.ErrInvalidInput
	}
	return s.repo.FindByNickname(ctx, userID, nickname)
}

func (s *CategoryService) GetCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// UpdateCategory changes a single field of the category identified by nickname.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, nickname string, field domain.CategoryField, newValue string) (*domain.Category, error) {
	if !field.IsValid() {
		return nil, financeErrors.ErrInvalidField
	}
	if newValue == "" {
		return nil, financeErrors.ErrInvalidInput
	}

	category, err := s.GetCategory(ctx, userID, nickname)
	if err != nil {
		return nil, err
	}

	switch field {
	case domain.CategoryFieldNickname:
		if newValue != category.Nickname {
			if err := s.ensureNicknameFree(ctx, userID, newValue); err != nil {
				return nil, err
			}
		}
		category.Nickname = newValue
	case domain.CategoryFieldType:
		category.CategoryType = newValue
	case domain.CategoryFieldBudget:
		budget, err := decimal.NewFromString(newValue)
		if err != nil {
			return nil, financeErrors.ErrInvalidBudget
		}
		category.Budget = budget
	case domain.CategoryFieldBudgetFreq:
		category.BudgetFreq = domain.BudgetFrequency(newValue)
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, userID, nickname string) error {
	category, err := s.GetCategory(ctx, userID, nickname)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, category.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) ensureNicknameFree(ctx context.Context, userID, nickname string) error {
	_, err := s.repo.FindByNickname(ctx, userID, nickname)
	if err == nil {
		return financeErrors.ErrDuplicateCategory
	}
	if !errors.Is(err, financeErrors.ErrCategoryNotFound) {
		return err
	}
	return nil
}
