// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/PCW-Learning/sw-tcp-sock/sock"
)

const loopback = "127.0.0.1"

// newServer binds an ephemeral port and returns the listener together
// with the port the kernel picked.
func newServer(t *testing.T) (sock.Handle, int) {
	t.Helper()
	ln, err := sock.NewServerSocket(0, 5)
	require.NoError(t, err)
	sa, err := unix.Getsockname(ln.FD())
	require.NoError(t, err)
	inet, ok := sa.(*unix.SockaddrInet4)
	require.True(t, ok)
	return ln, inet.Port
}

// connectPair establishes a loopback connection and returns the
// server-side (accepted) and client-side handles. The listener is closed
// before returning; the caller owns both connection handles.
func connectPair(t *testing.T) (srv, cli sock.Handle) {
	t.Helper()
	ln, port := newServer(t)
	defer sock.Close(ln)

	accepted := make(chan sock.Handle, 1)
	errc := make(chan error, 1)
	go func() {
		h, err := sock.Accept(ln)
		errc <- err
		accepted <- h
	}()

	cli, err := sock.NewClientSocket(loopback, port)
	require.NoError(t, err)
	require.NoError(t, <-errc)
	srv = <-accepted
	require.True(t, srv.Valid())
	return srv, cli
}

// freePort finds a currently free port by binding and releasing an
// ephemeral listener.
func freePort(t *testing.T) int {
	t.Helper()
	ln, port := newServer(t)
	require.NoError(t, sock.Close(ln))
	return port
}
