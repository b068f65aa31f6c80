// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build darwin

package sock

import "golang.org/x/sys/unix"

// Darwin names the idle-before-first-probe option TCP_KEEPALIVE.
const tcpKeepIdle = unix.TCP_KEEPALIVE
