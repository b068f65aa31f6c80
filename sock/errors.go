// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

package sock

import "fmt"

// Sentinel outcomes of the receive and factory paths. They are mutually
// distinguishable with errors.Is and never carry a byte count.
var (
	// ErrTimeout is returned by RecvTimeout when the timeout elapses
	// before any data is readable.
	ErrTimeout = fmt.Errorf("receive timed out")

	// ErrPeerClosed is returned by RecvTimeout when the peer has
	// performed an orderly shutdown.
	ErrPeerClosed = fmt.Errorf("peer closed connection")

	// ErrInvalidAddress is returned by NewClientSocket when the textual
	// address does not parse as a numeric IPv4 address.
	ErrInvalidAddress = fmt.Errorf("invalid IPv4 address")

	// ErrInvalidPort marks a port outside 0-65535.
	ErrInvalidPort = fmt.Errorf("port out of range")
)

// SetupError reports a failure while creating or configuring a
// server-side socket. Setup failures indicate misconfiguration or
// resource exhaustion rather than transient network conditions, so they
// carry a distinct type: callers that want the old fail-fast behavior can
// treat any *SetupError as fatal, while connect and transfer errors stay
// plain and recoverable.
type SetupError struct {
	Op   string
	Port int // 0 when the operation is not port-specific
	Err  error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Port != 0 {
		return fmt.Sprintf("%s (port %d): %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *SetupError) Unwrap() error {
	return e.Err
}
