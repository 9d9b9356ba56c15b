package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors returned by the remote clients. Callers match them with
// [errors.Is]; the concrete wrap keeps the upstream status and body text for
// logging.
var (
	// ErrServiceWarmingUp is returned when the classification model is still
	// loading on the remote side (HTTP 503). The request may succeed if
	// retried after a short delay.
	ErrServiceWarmingUp = errors.New("remote model is loading")

	// ErrAuthenticationFailed is returned when the remote service rejects
	// the configured credential (HTTP 401 or 403).
	ErrAuthenticationFailed = errors.New("remote service rejected credentials")

	// ErrUpstream is returned for any other non-2xx response from a remote
	// service. The wrap preserves the status code and response body.
	ErrUpstream = errors.New("remote service error")

	// ErrTimeout is returned when a remote call exceeds its deadline.
	ErrTimeout = errors.New("remote service request timed out")

	// ErrTransport is returned for connection-level failures that prevented
	// a response from being received at all.
	ErrTransport = errors.New("network error reaching remote service")

	// ErrMalformedResponse is returned when a 200 response cannot be decoded
	// into any of the shapes the client understands.
	ErrMalformedResponse = errors.New("malformed response from remote service")

	// ErrEmptyResponse is returned when the generation service replies with
	// a 200 but no usable text. There is nothing to fall back on.
	ErrEmptyResponse = errors.New("empty response from remote service")
)

// classifyTransportError maps a resty request error to the package sentinels.
// Context cancellation is propagated unchanged so callers can tell a client
// disconnect apart from a slow upstream.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
