package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var (
	ErrInvalidInput        = NewValidationError("Invalid input")
	ErrInvalidField        = NewValidationError("Invalid field specified.")
	ErrInvalidBudget       = NewValidationError("Budget must be a decimal number")
	ErrMissingBudget       = NewValidationError("Budget must be provided")
	ErrInvalidTransaction  = NewValidationError("Invalid transaction ID")
	ErrAccountNotFound     = errors.New("no such account found for the user")
	ErrCategoryNotFound    = errors.New("no such category found for the user")
	ErrTransactionNotFound = errors.New("no transaction found for the provided ID")
	ErrDuplicateAccount    = errors.New("account with this name already exists")
	ErrDuplicateCategory   = errors.New("category with this nickname already exists")
)

type ReportErrorKind int

const (
	// InputError means a stored row could not be interpreted, e.g. a malformed date.
	InputError ReportErrorKind = iota + 1
	// AggregationFailure means the report could not be assembled, e.g. storage failed.
	AggregationFailure
)

func (k ReportErrorKind) String() string {
	switch k {
	case InputError:
		return "input error"
	case AggregationFailure:
		return "aggregation failure"
	default:
		return "unknown report error"
	}
}

// ReportError is returned once per report call; no partial report accompanies it.
type ReportError struct {
	Kind ReportErrorKind
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Kind, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(kind ReportErrorKind, err error) error {
	return &ReportError{Kind: kind, Err: err}
}

// ReportErrorKindOf returns the kind of the report error in err's chain, or 0.
func ReportErrorKindOf(err error) ReportErrorKind {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Kind
	}
	return 0
}
