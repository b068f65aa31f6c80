// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import "golang.org/x/sys/unix"

// IsPortAvailable reports whether a transient probe socket can bind the
// port on all local interfaces right now. Any bind failure, including an
// out-of-range port, counts as unavailable. The probe socket is always
// closed before returning.
//
// This is a time-of-check/time-of-use probe: the port can be taken
// between this call and the caller's own bind, so a later bind failure is
// authoritative and must still be handled.
func IsPortAvailable(port int) bool {
	if port < 0 || port > 65535 {
		return false
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return false
	}
	defer unix.Close(fd)
	return unix.Bind(fd, &unix.SockaddrInet4{Port: port}) == nil
}
