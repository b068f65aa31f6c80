// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PCW-Learning/sw-tcp-sock/sock"
)

func TestNewClientSocketRejectsMalformedAddress(t *testing.T) {
	for _, addr := range []string{"", "not-an-address", "999.0.0.1", "::1"} {
		_, err := sock.NewClientSocket(addr, 9000)
		require.ErrorIs(t, err, sock.ErrInvalidAddress, "address %q", addr)
	}
}

func TestNewClientSocketRejectsInvalidPort(t *testing.T) {
	_, err := sock.NewClientSocket(loopback, -5)
	require.ErrorIs(t, err, sock.ErrInvalidPort)
}

func TestNewClientSocketConnectionRefused(t *testing.T) {
	_, err := sock.NewClientSocket(loopback, freePort(t))
	require.Error(t, err)
	require.NotErrorIs(t, err, sock.ErrInvalidAddress)
}

func TestNewClientSocketConnects(t *testing.T) {
	srv, cli := connectPair(t)
	defer sock.Close(srv)
	defer sock.Close(cli)
	require.True(t, cli.Valid())
}
