// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

// Package sock is a minimal TCP connection-management layer over raw OS
// socket descriptors: listening-socket setup with a fixed keep-alive
// policy, outbound connects, send/receive primitives with blocking and
// timeout-bounded semantics, and orderly-disconnect detection across a
// tracked set of connections.
//
// The package imposes no framing, no scheduling and no retries. Every
// operation is a direct synchronous call against the descriptor; callers
// own every Handle for its whole lifetime and own any concurrency around
// it. A Handle must not be used from more than one goroutine at a time
// without external synchronization.
//
// Server-side setup failures are reported as *SetupError: they indicate
// misconfiguration and are not expected to be retried. Connect and
// transfer failures are routine and come back as plain wrapped errors,
// with ErrTimeout and ErrPeerClosed marking the two non-failure outcomes
// of a timeout-bounded receive.
package sock
