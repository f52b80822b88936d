package interfaces

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID string, req domain.ClientTransaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID int) error
	GetCategoryTransactions(ctx context.Context, userID, nickname string) ([]domain.Transaction, error)
	GetAccountTransactions(ctx context.Context, userID, name string) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	responder
	service TransactionServiceInterface
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	logger *slog.Logger,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *TransactionHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &TransactionHandler{
		responder: newResponder(logger, respondJSON, respondError),
		service:   service,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.ClientTransaction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.CreateTransaction(r.Context(), userID, req)
	if err != nil {
		h.serviceError(w, r, err, "Failed to create transaction")
		return
	}
	h.success(w, http.StatusCreated, "Transaction successfully created.", transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	transactionID, err := strconv.Atoi(r.PathValue("transactionID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, financeErrors.ErrInvalidTransaction.Error())
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
		h.serviceError(w, r, err, "Failed to delete transaction")
		return
	}
	h.success(w, http.StatusOK, "Transaction successfully deleted.", nil)
}

func (h *TransactionHandler) GetCategoryTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	transactions, err := h.service.GetCategoryTransactions(r.Context(), userID, r.PathValue("nickname"))
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve transactions")
		return
	}
	h.success(w, http.StatusOK, "Transactions retrieved successfully.", transactions)
}

func (h *TransactionHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	transactions, err := h.service.GetAccountTransactions(r.Context(), userID, r.PathValue("accountName"))
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve transactions")
		return
	}
	h.success(w, http.StatusOK, "Transactions retrieved successfully.", transactions)
}
