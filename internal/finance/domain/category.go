package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type BudgetFrequency string

const (
	FrequencyDaily   BudgetFrequency = "daily"
	FrequencyWeekly  BudgetFrequency = "weekly"
	FrequencyMonthly BudgetFrequency = "monthly"
	FrequencyYearly  BudgetFrequency = "yearly"
)

const minutesPerDay = 24 * 60

// WindowMinutes returns the length of the trailing budget window in minutes.
// Unknown frequencies have no window and ok is false.
func (f BudgetFrequency) WindowMinutes() (minutes int64, ok bool) {
	switch f {
	case FrequencyDaily:
		return minutesPerDay, true
	case FrequencyWeekly:
		return 7 * minutesPerDay, true
	case FrequencyMonthly:
		return 30 * minutesPerDay, true
	case FrequencyYearly:
		return 365 * minutesPerDay, true
	default:
		return 0, false
	}
}

type Category struct {
	ID           int             `json:"category_id"`
	UserID       string          `json:"-"`
	Nickname     string          `json:"nickname"`
	CategoryType string          `json:"category_type"`
	Budget       decimal.Decimal `json:"budget"`
	BudgetFreq   BudgetFrequency `json:"budget_freq"`
}

// CategoryField names a column that can be changed through a category update.
type CategoryField string

const (
	CategoryFieldNickname   CategoryField = "nickname"
	CategoryFieldType       CategoryField = "category_type"
	CategoryFieldBudget     CategoryField = "budget"
	CategoryFieldBudgetFreq CategoryField = "budget_freq"
)

func (f CategoryField) IsValid() bool {
	switch f {
	case CategoryFieldNickname, CategoryFieldType, CategoryFieldBudget, CategoryFieldBudgetFreq:
		return true
	}
	return false
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	FindByNickname(ctx context.Context, userID, nickname string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID int) (int64, error)
}
