// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Handle is an opaque reference to a listening or connected TCP endpoint.
// Handles are produced by NewServerSocket, NewClientSocket and Accept and
// are owned by the caller until closed.
//
// The zero Handle marks an empty slot in a tracked-connection collection
// (see CheckClientConnections) and is never returned by a factory on
// success: the factories only hand out descriptors the kernel allocated
// above the stdio range of a running Go process.
type Handle struct {
	fd int
}

// FromFD wraps a descriptor obtained outside this package. The caller
// keeps ownership of the descriptor.
func FromFD(fd int) Handle {
	return Handle{fd: fd}
}

// FD returns the underlying OS descriptor.
func (h Handle) FD() int {
	return h.fd
}

// Valid reports whether h refers to an endpoint, as opposed to the zero
// empty-slot sentinel.
func (h Handle) Valid() bool {
	return h.fd > 0
}

// Close releases the endpoint. Any blocking operation in flight on h
// fails once the descriptor is gone. Closing the same Handle twice is the
// caller's bug, exactly as with a raw descriptor.
func Close(h Handle) error {
	if !h.Valid() {
		return fmt.Errorf("close: empty handle")
	}
	return unix.Close(h.fd)
}
