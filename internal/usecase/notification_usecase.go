package usecase

import (
	"context"

	"makan/internal/domain/service"
	"makan/internal/errors"
)

// NotificationResult summarises one fan-out of push notifications.
type NotificationResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase turns chat events into push notifications on the recipient's devices.
type NotificationUsecase interface {
	// NotifyMessage pushes the message to every active device of the recipient.
	// Store failures are returned as *RetryableError.
	NotifyMessage(ctx context.Context, event *service.MessageEvent) (*NotificationResult, error)
}

// RetryableError marks a failure after which the event should be redelivered.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether any error in err's chain is retryable.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
