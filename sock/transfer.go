// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DefaultBufferSize is a reasonable transfer buffer size for callers
// that have no better number.
const DefaultBufferSize = 1024

// Send transmits up to len(buf) bytes in a single underlying transfer
// and returns the count actually sent, which may be short. There is no
// implicit retry; callers needing all-bytes-sent semantics loop
// themselves.
func Send(h Handle, buf []byte) (int, error) {
	n, err := unix.Write(h.fd, buf)
	if err != nil {
		return 0, fmt.Errorf("send: %w", err)
	}
	return n, nil
}

// RecvBlocking waits indefinitely for data and returns the count
// received, up to len(buf). A return of (0, nil) means the peer
// performed an orderly shutdown.
func RecvBlocking(h Handle, buf []byte) (int, error) {
	n, err := unix.Read(h.fd, buf)
	if err != nil {
		return 0, fmt.Errorf("recv: %w", err)
	}
	return n, nil
}

// RecvTimeout waits up to timeoutMs milliseconds for the handle to
// become readable, then issues a single receive. The outcomes:
//
//   - data arrived in time: the byte count, nil error
//   - nothing readable within timeoutMs: ErrTimeout
//   - the peer performed an orderly shutdown: ErrPeerClosed
//   - the wait or the receive failed: the wrapped failure
//
// A negative timeout blocks indefinitely, matching poll semantics.
func RecvTimeout(h Handle, buf []byte, timeoutMs int) (int, error) {
	fds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
	for {
		// Poll takes its timeout in milliseconds, so the caller's value
		// passes through unchanged.
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			return 0, ErrTimeout
		}
		break
	}
	n, err := unix.Read(h.fd, buf)
	if err != nil {
		return 0, fmt.Errorf("recv: %w", err)
	}
	if n == 0 {
		return 0, ErrPeerClosed
	}
	return n, nil
}
