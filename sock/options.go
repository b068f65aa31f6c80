// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import "golang.org/x/sys/unix"

// SetSocketBufferSize sets the kernel receive and transmit buffer sizes
// for the handle, in bytes. The kernel may round the values up; read
// them back with getsockopt if the exact size matters.
//
// Sizing failures are configuration-class and come back as *SetupError.
func SetSocketBufferSize(h Handle, rx, tx int) error {
	if err := unix.SetsockoptInt(h.fd, unix.SOL_SOCKET, unix.SO_RCVBUF, rx); err != nil {
		return &SetupError{Op: "setsockopt SO_RCVBUF", Err: err}
	}
	if err := unix.SetsockoptInt(h.fd, unix.SOL_SOCKET, unix.SO_SNDBUF, tx); err != nil {
		return &SetupError{Op: "setsockopt SO_SNDBUF", Err: err}
	}
	return nil
}
