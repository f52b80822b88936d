package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, nickname string, field domain.CategoryField, newValue string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, nickname string) error
}

type CategoryHandler struct {
	responder
	service CategoryServiceInterface
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	logger *slog.Logger,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *CategoryHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &CategoryHandler{
		responder: newResponder(logger, respondJSON, respondError),
		service:   service,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		Nickname     string                 `json:"nickname"`
		CategoryType string                 `json:"category_type"`
		Budget       *decimal.Decimal       `json:"budget"`
		BudgetFreq   domain.BudgetFrequency `json:"budget_freq"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Budget == nil {
		h.serviceError(w, r, financeErrors.ErrMissingBudget, "Failed to create category")
		return
	}

	category := &domain.Category{
		UserID:       userID,
		Nickname:     req.Nickname,
		CategoryType: req.CategoryType,
		Budget:       *req.Budget,
		BudgetFreq:   req.BudgetFreq,
	}
	if err := h.service.CreateCategory(r.Context(), category); err != nil {
		h.serviceError(w, r, err, "Failed to create category")
		return
	}
	h.success(w, http.StatusCreated, fmt.Sprintf("Successfully created %s", category.Nickname), category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	categories, err := h.service.GetCategories(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve categories")
		return
	}
	h.success(w, http.StatusOK, "Categories retrieved successfully.", categories)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		Field    domain.CategoryField `json:"field"`
		NewValue string               `json:"new_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), userID, r.PathValue("nickname"), req.Field, req.NewValue)
	if err != nil {
		h.serviceError(w, r, err, "Failed to update category")
		return
	}
	h.success(w, http.StatusOK, "Category updated successfully.", category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	nickname := r.PathValue("nickname")
	if err := h.service.DeleteCategory(r.Context(), userID, nickname); err != nil {
		h.serviceError(w, r, err, "Failed to delete category")
		return
	}
	h.success(w, http.StatusOK, fmt.Sprintf("Successfully deleted %s", nickname), nil)
}
