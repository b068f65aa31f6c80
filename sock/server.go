// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewServerSocket creates a listening socket bound to the port on all
// local interfaces, with a pending-connection backlog of backlog.
//
// Before binding, the socket gets SO_REUSEADDR and SO_REUSEPORT so a
// restarted server can rebind immediately while the previous instance's
// address lingers in TIME_WAIT, and the fixed keep-alive policy
// (enabled, 10s idle, 5s probe interval, 3 probes) so silently-dead
// peers are detected by the transport. The policy is immutable for the
// socket's lifetime.
//
// Port 0 requests an ephemeral port. Every failure on this path is a
// *SetupError.
func NewServerSocket(port, backlog int) (Handle, error) {
	if port < 0 || port > 65535 {
		return Handle{}, &SetupError{Op: "create server socket", Port: port, Err: ErrInvalidPort}
	}
	if backlog < 0 {
		backlog = 0
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return Handle{}, &SetupError{Op: "socket", Port: port, Err: err}
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return Handle{}, &SetupError{Op: "setsockopt SO_REUSEADDR", Port: port, Err: err}
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
		unix.Close(fd)
		return Handle{}, &SetupError{Op: "setsockopt SO_REUSEPORT", Port: port, Err: err}
	}
	if err := applyKeepAlive(fd, serverKeepAlive); err != nil {
		unix.Close(fd)
		return Handle{}, &SetupError{Op: "keep-alive setup", Port: port, Err: err}
	}
	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: port}); err != nil {
		unix.Close(fd)
		return Handle{}, &SetupError{Op: "bind", Port: port, Err: err}
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return Handle{}, &SetupError{Op: "listen", Port: port, Err: err}
	}
	return Handle{fd: fd}, nil
}

// Accept blocks until a pending connection is available on the listening
// handle and returns the connected Handle for it.
func Accept(ln Handle) (Handle, error) {
	nfd, _, err := unix.Accept(ln.fd)
	if err != nil {
		return Handle{}, fmt.Errorf("accept: %w", err)
	}
	return Handle{fd: nfd}, nil
}
