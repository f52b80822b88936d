package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	categorySummaryHeader = "Category Summary:"
	accountSummaryHeader  = "Account Summary:"
)

// legacyDateLayout matches dates written as "2024-11-30 18:22:01.123456 UTC".
const legacyDateLayout = "2006-01-02 15:04:05.999999999 UTC"

func parseTransactionDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}
	if legacy, legacyErr := time.Parse(legacyDateLayout, value); legacyErr == nil {
		return legacy, nil
	}
	return time.Time{}, err
}

func formatReportLine(row domain.ReportRow) string {
	notes := ""
	if row.Notes != nil {
		notes = *row.Notes
	}
	return fmt.Sprintf("%s, %s, %s", row.TransactionDate, row.Amount.String(), notes)
}

// BuildCategoryReport groups rows by category nickname and totals the rows that fall
// inside each category's budget window ending at now. Categories come out in the order
// they were first seen; a category whose rows are all outside the window is still listed.
func BuildCategoryReport(rows []domain.ReportRow, now time.Time) ([]domain.CategorySummary, error) {
	summaries := make([]domain.CategorySummary, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, seen := index[row.CategoryNickname]
		if !seen {
			summaries = append(summaries, domain.CategorySummary{
				Nickname:       row.CategoryNickname,
				Budget:         row.Budget,
				BudgetFreq:     row.BudgetFreq,
				Total:          decimal.Zero,
				TransactionIDs: []int{},
				Lines:          []string{},
			})
			i = len(summaries) - 1
			index[row.CategoryNickname] = i
		}
		summary := &summaries[i]

		date, err := parseTransactionDate(row.TransactionDate)
		if err != nil {
			return nil, financeErrors.NewReportError(financeErrors.InputError,
				fmt.Errorf("transaction %d has malformed date %q: %w", row.TransactionID, row.TransactionDate, err))
		}

		if window, bounded := row.BudgetFreq.WindowMinutes(); bounded {
			elapsed := int64(now.Sub(date) / time.Minute)
			if elapsed > window {
				continue
			}
		}

		summary.Total = summary.Total.Add(row.Amount)
		summary.Overbudget = summary.Total.GreaterThan(summary.Budget)
		summary.Lines = append(summary.Lines, formatReportLine(row))
		summary.TransactionIDs = append(summary.TransactionIDs, row.TransactionID)
	}

	return summaries, nil
}

// BuildFlatOverview renders category and account totals as plain text lines.
// Entries without any transaction are left out.
func BuildFlatOverview(categoryTotals, accountTotals []domain.NamedTotal) []string {
	lines := []string{categorySummaryHeader}
	for _, total := range categoryTotals {
		if !total.Total.Valid {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s : %s", total.Name, total.Total.Decimal.String()))
	}

	lines = append(lines, accountSummaryHeader)
	for _, total := range accountTotals {
		if !total.Total.Valid {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", total.Name, total.Total.Decimal.String()))
	}
	return lines
}

type ReportService struct {
	repo domain.ReportRepository
	now  func() time.Time
}

func NewReportService(repo domain.ReportRepository) *ReportService {
	return &ReportService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used as the end of every budget window.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

func (s *ReportService) GetReportDetails(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	rows, err := s.repo.FindReportRows(ctx, userID)
	if err != nil {
		return nil, financeErrors.NewReportError(financeErrors.AggregationFailure, err)
	}
	return BuildCategoryReport(rows, s.now())
}

func (s *ReportService) GetReportOverview(ctx context.Context, userID string) ([]string, error) {
	var categoryTotals, accountTotals []domain.NamedTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categoryTotals, err = s.repo.CategoryTotals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		accountTotals, err = s.repo.AccountTotals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, financeErrors.NewReportError(financeErrors.AggregationFailure, err)
	}

	return BuildFlatOverview(categoryTotals, accountTotals), nil
}
