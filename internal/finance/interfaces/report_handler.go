package interfaces

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/sebuszqo/FinTrack/internal/logging"
)

type ReportServiceInterface interface {
	GetReportDetails(ctx context.Context, userID string) ([]domain.CategorySummary, error)
	GetReportOverview(ctx context.Context, userID string) ([]string, error)
}

type ReportHandler struct {
	responder
	service ReportServiceInterface
}

func NewReportHandler(
	service ReportServiceInterface,
	logger *slog.Logger,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *ReportHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &ReportHandler{
		responder: newResponder(logger, respondJSON, respondError),
		service:   service,
	}
}

// Report failures of either kind are answered with a generic 500.
func (h *ReportHandler) reportError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("report failed",
		"kind", financeErrors.ReportErrorKindOf(err).String(),
		logging.FieldError, err,
		logging.FieldRequestID, logging.RequestIDFromContext(r.Context()),
		logging.FieldPath, r.URL.Path,
	)
	h.respondError(w, http.StatusInternalServerError, "Failed to build report")
}

func (h *ReportHandler) GetReportDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	report, err := h.service.GetReportDetails(r.Context(), userID)
	if err != nil {
		h.reportError(w, r, err)
		return
	}
	h.success(w, http.StatusOK, "Report generated successfully.", report)
}

func (h *ReportHandler) GetReportOverview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	overview, err := h.service.GetReportOverview(r.Context(), userID)
	if err != nil {
		h.reportError(w, r, err)
		return
	}
	h.success(w, http.StatusOK, "Overview generated successfully.", overview)
}
