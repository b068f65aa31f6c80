// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// KeepAlive describes a transport-level liveness probing policy.
type KeepAlive struct {
	Enabled  bool
	Idle     time.Duration // idle time before the first probe
	Interval time.Duration // time between probes
	Count    int           // failed probes before the peer is declared dead
}

// serverKeepAlive is the fixed policy applied to every server socket.
var serverKeepAlive = KeepAlive{
	Enabled:  true,
	Idle:     10 * time.Second,
	Interval: 5 * time.Second,
	Count:    3,
}

func applyKeepAlive(fd int, ka KeepAlive) error {
	flag := 0
	if ka.Enabled {
		flag = 1
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE, flag); err != nil {
		return fmt.Errorf("SO_KEEPALIVE: %w", err)
	}
	if !ka.Enabled {
		return nil
	}
	// The kernel takes the timing options in whole seconds.
	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, tcpKeepIdle, int(ka.Idle/time.Second)); err != nil {
		return fmt.Errorf("keep-alive idle: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPINTVL, int(ka.Interval/time.Second)); err != nil {
		return fmt.Errorf("TCP_KEEPINTVL: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPCNT, ka.Count); err != nil {
		return fmt.Errorf("TCP_KEEPCNT: %w", err)
	}
	return nil
}

// KeepAliveSettings reads the keep-alive policy currently set on the
// handle back from the kernel.
func KeepAliveSettings(h Handle) (KeepAlive, error) {
	enabled, err := unix.GetsockoptInt(h.fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE)
	if err != nil {
		return KeepAlive{}, fmt.Errorf("SO_KEEPALIVE: %w", err)
	}
	idle, err := unix.GetsockoptInt(h.fd, unix.IPPROTO_TCP, tcpKeepIdle)
	if err != nil {
		return KeepAlive{}, fmt.Errorf("keep-alive idle: %w", err)
	}
	interval, err := unix.GetsockoptInt(h.fd, unix.IPPROTO_TCP, unix.TCP_KEEPINTVL)
	if err != nil {
		return KeepAlive{}, fmt.Errorf("TCP_KEEPINTVL: %w", err)
	}
	count, err := unix.GetsockoptInt(h.fd, unix.IPPROTO_TCP, unix.TCP_KEEPCNT)
	if err != nil {
		return KeepAlive{}, fmt.Errorf("TCP_KEEPCNT: %w", err)
	}
	return KeepAlive{
		Enabled:  enabled != 0,
		Idle:     time.Duration(idle) * time.Second,
		Interval: time.Duration(interval) * time.Second,
		Count:    count,
	}, nil
}
