package swap

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable wraps transport-level failures: the request
	// never reached the exchange, or no response came back. The
	// exchange may or may not have executed it.
	ErrServiceUnavailable = errors.New("exchange unavailable")

	// ErrSlippageExceeded is reported when a swap's output would fall
	// below the requested minimum.
	ErrSlippageExceeded = errors.New("slippage exceeded")
)

// ServiceError is a failure reported by the exchange itself: the call
// executed and was rejected.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("exchange returned status %d: %s", e.Status, e.Message)
}
