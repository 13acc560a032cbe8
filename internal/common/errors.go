package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Each stage wraps its failures in one of these so
// callers can classify with errors.Is regardless of the underlying cause.
var (
	ErrCapture           = errors.New("capture failed")
	ErrQuotaExceeded     = errors.New("quota exceeded")
	ErrUpload            = errors.New("storage upload failed")
	ErrRegistration      = errors.New("document registration failed")
	ErrJobDispatch       = errors.New("job dispatch failed")
	ErrPollTimeout       = errors.New("extraction wait timed out")
	ErrPollRead          = errors.New("extraction wait read failed")
	ErrAutomationTrigger = errors.New("automation trigger failed")
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CaptureError marks a per-file normalization failure; other files in the
// same submission are unaffected.
func CaptureError(filename string, cause error) error {
	return &AppError{Code: "CAPTURE_ERROR", Message: filename, Cause: fmt.Errorf("%w: %w", ErrCapture, cause)}
}

func QuotaExceededError(tenant string) error {
	return &AppError{Code: "QUOTA_EXCEEDED", Message: tenant, Cause: ErrQuotaExceeded}
}

func UploadError(filename string, cause error) error {
	return &AppError{Code: "UPLOAD_ERROR", Message: filename, Cause: fmt.Errorf("%w: %w", ErrUpload, cause)}
}

func RegistrationError(filename string, cause error) error {
	return &AppError{Code: "REGISTRATION_ERROR", Message: filename, Cause: fmt.Errorf("%w: %w", ErrRegistration, cause)}
}

func JobDispatchError(documentID string, cause error) error {
	return &AppError{Code: "JOB_DISPATCH_ERROR", Message: documentID, Cause: fmt.Errorf("%w: %w", ErrJobDispatch, cause)}
}

func PollTimeoutError(documentID string) error {
	return &AppError{Code: "POLL_TIMEOUT", Message: documentID, Cause: ErrPollTimeout}
}

func PollReadError(documentID string, cause error) error {
	return &AppError{Code: "POLL_READ_ERROR", Message: documentID, Cause: fmt.Errorf("%w: %w", ErrPollRead, cause)}
}

func AutomationTriggerError(batchID string, cause error) error {
	return &AppError{Code: "AUTOMATION_TRIGGER_ERROR", Message: batchID, Cause: fmt.Errorf("%w: %w", ErrAutomationTrigger, cause)}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatus maps a pipeline error onto the gRPC status space.
func ToStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuotaExceeded):
		return status.Error(codes.ResourceExhausted, "document quota exceeded")
	case errors.Is(err, ErrPollTimeout):
		return status.Error(codes.DeadlineExceeded, "extraction still running; check the queue later")
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrCapture):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
