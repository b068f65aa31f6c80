// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

// Exposed for tests: the platform option number for the keep-alive idle
// time, so readback tests can hit getsockopt directly instead of
// trusting KeepAliveSettings.
const TCPKeepIdleOpt = tcpKeepIdle
