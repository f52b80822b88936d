package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportRow is one transaction joined with the budget settings of its category.
type ReportRow struct {
	CategoryNickname string
	Budget           decimal.Decimal
	BudgetFreq       BudgetFrequency
	TransactionDate  string
	Amount           decimal.Decimal
	Notes            *string
	TransactionID    int
}

// CategorySummary is the per-category view of the detailed budget report.
// TransactionIDs and Lines are parallel: Lines[i] describes TransactionIDs[i].
type CategorySummary struct {
	Nickname       string          `json:"nickname"`
	Budget         decimal.Decimal `json:"budget"`
	BudgetFreq     BudgetFrequency `json:"budget_freq"`
	Overbudget     bool            `json:"overbudget"`
	Total          decimal.Decimal `json:"total"`
	TransactionIDs []int           `json:"transaction_idz"`
	Lines          []string        `json:"cat_trans"`
}

// NamedTotal is the sum of transactions for a category or an account.
// Total is invalid (NULL) when nothing was booked against it.
type NamedTotal struct {
	Name  string
	Total decimal.NullDecimal
}

type ReportRepository interface {
	FindReportRows(ctx context.Context, userID string) ([]ReportRow, error)
	CategoryTotals(ctx context.Context, userID string) ([]NamedTotal, error)
	AccountTotals(ctx context.Context, userID string) ([]NamedTotal, error)
}
