package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `category_id, user_id, nickname, category_type, budget, budget_freq`

func scanCategory(scanner interface{ Scan(...any) error }, category *domain.Category) error {
	return scanner.Scan(&category.ID, &category.UserID, &category.Nickname,
		&category.CategoryType, &category.Budget, &category.BudgetFreq)
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (user_id, nickname, category_type, budget, budget_freq)
		VALUES ($1, $2, $3, $4, $5) RETURNING category_id`,
		category.UserID, category.Nickname, category.CategoryType, category.Budget, category.BudgetFreq,
	).Scan(&category.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateCategory
	}
	return err
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY category_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := scanCategory(rows, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByNickname(ctx context.Context, userID, nickname string) (*domain.Category, error) {
	var category domain.Category
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 AND nickname = $2`, userID, nickname)
	if err := scanCategory(row, &category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET nickname = $1, category_type = $2, budget = $3, budget_freq = $4
		WHERE category_id = $5 AND user_id = $6`,
		category.Nickname, category.CategoryType, category.Budget, category.BudgetFreq, category.ID, category.UserID,
	)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateCategory
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
