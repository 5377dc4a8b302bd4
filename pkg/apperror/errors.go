package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger (LED) ----

// ErrUnauthorized: a capability check failed. Surfaced to the caller, never retried.
func ErrUnauthorized() *AppError {
	return New("LED_001", "Caller lacks the required capability", http.StatusForbidden)
}

// ErrInsufficientBalance: the requested amount exceeds the live computed balance.
func ErrInsufficientBalance() *AppError {
	return New("LED_002", "Amount exceeds live balance", http.StatusPaymentRequired)
}

// ErrRateCanOnlyDecrease: a global rate update was not strictly below the current rate.
func ErrRateCanOnlyDecrease() *AppError {
	return New("LED_003", "Global rate can only decrease", http.StatusUnprocessableEntity)
}

// ErrArithmeticOverflow: the accrual computation produced a value outside the
// supported range. Fatal to the operation, no automatic recovery.
func ErrArithmeticOverflow() *AppError {
	return New("LED_004", "Accrual arithmetic overflow", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("LED_005", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_006", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Vault (VLT) ----

// ErrReleaseFailed: the external reserve release failed during withdrawal.
// The burn is compensated before this is returned; the caller may retry.
func ErrReleaseFailed(err error) *AppError {
	return Wrap("VLT_001", "Reserve release failed", http.StatusBadGateway, err)
}

// ---- Bridge (BRG) ----

func ErrRemoteNotConfigured(domainID string) *AppError {
	return New("BRG_001", fmt.Sprintf("Remote domain %s is not configured", domainID), http.StatusUnprocessableEntity)
}

func ErrTransferLimitExceeded() *AppError {
	return New("BRG_002", "Transfer exceeds remote domain limit", http.StatusUnprocessableEntity)
}

// ErrDuplicateDelivery: an inbound payload nonce was already consumed.
func ErrDuplicateDelivery() *AppError {
	return New("BRG_003", "Payload already delivered", http.StatusConflict)
}

func ErrMalformedPayload(err error) *AppError {
	return Wrap("BRG_004", "Malformed bridge payload", http.StatusBadRequest, err)
}

func ErrTransportSend(err error) *AppError {
	return Wrap("BRG_005", "Transport send failed", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_005-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("LED_005", message, http.StatusBadRequest)
}
