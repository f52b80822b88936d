package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, userID, name, accountType string) (*domain.Account, error)
	GetAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	DeleteAccount(ctx context.Context, userID, name string) error
}

type AccountHandler struct {
	responder
	service AccountServiceInterface
}

func NewAccountHandler(
	service AccountServiceInterface,
	logger *slog.Logger,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *AccountHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &AccountHandler{
		responder: newResponder(logger, respondJSON, respondError),
		service:   service,
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		AccountName string `json:"account_name"`
		AccountType string `json:"account_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.CreateAccount(r.Context(), userID, req.AccountName, req.AccountType)
	if err != nil {
		h.serviceError(w, r, err, "Failed to create account")
		return
	}
	h.success(w, http.StatusCreated, fmt.Sprintf("Successfully created %s", account.AccountName), account)
}

func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	accounts, err := h.service.GetAccounts(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve accounts")
		return
	}
	h.success(w, http.StatusOK, "Accounts retrieved successfully.", accounts)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	name := r.PathValue("accountName")
	if err := h.service.DeleteAccount(r.Context(), userID, name); err != nil {
		h.serviceError(w, r, err, "Failed to delete account")
		return
	}
	h.success(w, http.StatusOK, fmt.Sprintf("Successfully deleted %s", name), nil)
}
