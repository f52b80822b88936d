package interfaces

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/FinTrack/internal/auth"
	financeErrors "github.com/sebuszqo/FinTrack/internal/finance/errors"
	"github.com/sebuszqo/FinTrack/internal/logging"
)

type (
	RespondJSONFunc  func(w http.ResponseWriter, status int, payload interface{})
	RespondErrorFunc func(w http.ResponseWriter, status int, message string)
)

// responder carries what every finance handler needs to answer a request.
type responder struct {
	logger       *slog.Logger
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func newResponder(logger *slog.Logger, respondJSON RespondJSONFunc, respondError RespondErrorFunc) responder {
	if logger == nil || respondJSON == nil || respondError == nil {
		panic("Logger and response functions must not be nil")
	}
	return responder{logger: logger, respondJSON: respondJSON, respondError: respondError}
}

func (h responder) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

func (h responder) success(w http.ResponseWriter, status int, message string, data interface{}) {
	payload := map[string]interface{}{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		payload["data"] = data
	}
	h.respondJSON(w, status, payload)
}

// serviceError maps finance errors to status codes. Anything unexpected is logged
// and answered with a 500 carrying only fallback.
func (h responder) serviceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrAccountNotFound),
		errors.Is(err, financeErrors.ErrCategoryNotFound),
		errors.Is(err, financeErrors.ErrTransactionNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, financeErrors.ErrDuplicateAccount),
		errors.Is(err, financeErrors.ErrDuplicateCategory):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(fallback,
			logging.FieldError, err,
			logging.FieldRequestID, logging.RequestIDFromContext(r.Context()),
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
		)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
