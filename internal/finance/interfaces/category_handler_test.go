package interfaces

import (
	"context"
	"net/http"
	"testing"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCategoryService struct {
	created *domain.Category
	update  struct {
		nickname string
		field    domain.CategoryField
		value    string
	}
	err error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	m.created = category
	return m.err
}

func (m *mockCategoryService) GetCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return []domain.Category{}, m.err
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, userID, nickname string, field domain.CategoryField, newValue string) (*domain.Category, error) {
	m.update.nickname, m.update.field, m.update.value = nickname, field, newValue
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{Nickname: nickname, BudgetFreq: domain.FrequencyWeekly}, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, userID, nickname string) error {
	return m.err
}

func TestCreateCategory(t *testing.T) {
	service := &mockCategoryService{}
	handler := NewCategoryHandler(service, testLogger, respondJSON, respondError)

	w := serve("POST /categories", handler.CreateCategory, http.MethodPost, "/categories",
		`{"nickname":"Food","category_type":"expense","budget":100.25,"budget_freq":"weekly"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, testUserID, service.created.UserID)
	assert.True(t, service.created.Budget.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, domain.FrequencyWeekly, service.created.BudgetFreq)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	handler := NewCategoryHandler(&mockCategoryService{err: financeErrors.ErrDuplicateCategory}, testLogger, respondJSON, respondError)

	w := serve("POST /categories", handler.CreateCategory, http.MethodPost, "/categories",
		`{"nickname":"Food","category_type":"expense","budget":"100","budget_freq":"weekly"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCategory_MissingBudget(t *testing.T) {
	bodies := []string{
		`{"nickname":"Food","category_type":"expense","budget_freq":"weekly"}`,
		`{"nickname":"Food","category_type":"expense","budget":null,"budget_freq":"weekly"}`,
	}

	for _, body := range bodies {
		service := &mockCategoryService{}
		handler := NewCategoryHandler(service, testLogger, respondJSON, respondError)

		w := serve("POST /categories", handler.CreateCategory, http.MethodPost, "/categories", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Budget must be provided", decodeBody(t, w)["message"])
		assert.Nil(t, service.created)
	}
}

func TestCreateCategory_ZeroBudgetIsAllowed(t *testing.T) {
	service := &mockCategoryService{}
	handler := NewCategoryHandler(service, testLogger, respondJSON, respondError)

	w := serve("POST /categories", handler.CreateCategory, http.MethodPost, "/categories",
		`{"nickname":"Savings","category_type":"income","budget":0,"budget_freq":"monthly"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, service.created)
	assert.True(t, service.created.Budget.IsZero())
}

func TestGetCategories_ReturnsEmptyArray(t *testing.T) {
	handler := NewCategoryHandler(&mockCategoryService{}, testLogger, respondJSON, respondError)

	w := serve("GET /categories", handler.GetCategories, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["data"])
}

func TestUpdateCategory(t *testing.T) {
	service := &mockCategoryService{}
	handler := NewCategoryHandler(service, testLogger, respondJSON, respondError)

	w := serve("PATCH /categories/{nickname}", handler.UpdateCategory, http.MethodPatch, "/categories/Food",
		map[string]string{"field": "budget", "new_value": "250"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Food", service.update.nickname)
	assert.Equal(t, domain.CategoryFieldBudget, service.update.field)
	assert.Equal(t, "250", service.update.value)
}

func TestUpdateCategory_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
		message  string
	}{
		{"invalid field", financeErrors.ErrInvalidField, http.StatusBadRequest, "Invalid field specified."},
		{"invalid budget", financeErrors.ErrInvalidBudget, http.StatusBadRequest, financeErrors.ErrInvalidBudget.Error()},
		{"unknown category", financeErrors.ErrCategoryNotFound, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCategoryHandler(&mockCategoryService{err: tt.err}, testLogger, respondJSON, respondError)
			w := serve("PATCH /categories/{nickname}", handler.UpdateCategory, http.MethodPatch, "/categories/Food",
				map[string]string{"field": "colour", "new_value": "red"})

			assert.Equal(t, tt.expected, w.Code)
			assert.Equal(t, tt.message, decodeBody(t, w)["message"])
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	handler := NewCategoryHandler(&mockCategoryService{}, testLogger, respondJSON, respondError)
	w := serve("DELETE /categories/{nickname}", handler.DeleteCategory, http.MethodDelete, "/categories/Food", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully deleted Food", decodeBody(t, w)["message"])
}
