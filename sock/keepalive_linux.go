// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux

package sock

import "golang.org/x/sys/unix"

// Linux names the idle-before-first-probe option TCP_KEEPIDLE.
const tcpKeepIdle = unix.TCP_KEEPIDLE
