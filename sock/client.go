// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// NewClientSocket connects a new stream socket to the peer at the given
// textual numeric IPv4 address and port. The connect blocks until the
// peer answers or the attempt fails.
//
// Unlike the server factory, every failure here is an ordinary wrapped
// error: an unreachable or refusing peer is a routine condition the
// caller decides how to handle. A malformed address reports
// ErrInvalidAddress before any connection attempt.
func NewClientSocket(ip string, port int) (Handle, error) {
	if port < 0 || port > 65535 {
		return Handle{}, fmt.Errorf("connect %s:%d: %w", ip, port, ErrInvalidPort)
	}
	addr := net.ParseIP(ip)
	if addr == nil {
		return Handle{}, fmt.Errorf("connect %s:%d: %w", ip, port, ErrInvalidAddress)
	}
	ip4 := addr.To4()
	if ip4 == nil {
		return Handle{}, fmt.Errorf("connect %s:%d: %w", ip, port, ErrInvalidAddress)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return Handle{}, fmt.Errorf("socket: %w", err)
	}
	sa := &unix.SockaddrInet4{Port: port}
	copy(sa.Addr[:], ip4)
	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return Handle{}, fmt.Errorf("connect %s:%d: %w", ip, port, err)
	}
	return Handle{fd: fd}, nil
}
