// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

//go:build linux || darwin

package sock

import (
	"log"
	"time"

	"github.com/PCW-Learning/sw-tcp-sock/journal"
	"golang.org/x/sys/unix"
)

// disconnects records connection teardowns so callers have an observable
// signal beyond the log line. Diagnostic output is not part of the
// contract; the journal and return values are.
var disconnects = journal.New(256)

// Disconnects drains and returns the disconnect events recorded since
// the previous drain, oldest first.
func Disconnects() []journal.Event {
	return disconnects.Drain()
}

// HandleClientDisconnection closes the handle and signals the teardown
// through the log and the disconnect journal. It does not guard against
// double-close; the caller, or the scan in CheckClientConnections via
// its slot tombstoning, must ensure a handle is torn down once.
func HandleClientDisconnection(h Handle) {
	log.Printf("client disconnected, closing socket %d", h.fd)
	_ = unix.Close(h.fd)
	disconnects.Record(journal.Event{FD: h.fd, Kind: journal.KindDisconnect, At: time.Now()})
}

// CheckClientConnections scans a caller-owned collection of tracked
// handles for peers that have completed an orderly shutdown. The scan is
// a single non-blocking pass: each non-empty slot gets a one-byte
// MSG_PEEK|MSG_DONTWAIT read that consumes nothing. A slot whose peek
// reports zero bytes is handed to HandleClientDisconnection and reset to
// the zero Handle, so no slot references a dead connection after the
// scan returns. Slots with pending data, no data, or an error are left
// untouched: the scan detects completed orderly closes only.
//
// The scan assumes exclusive access to the whole collection for the
// duration of the pass. It is safe to call repeatedly on a poll cycle; a
// slot emptied by one pass is skipped by the next.
func CheckClientConnections(clients []Handle) {
	var peek [1]byte
	for i, h := range clients {
		if !h.Valid() {
			continue
		}
		n, _, err := unix.Recvfrom(h.fd, peek[:], unix.MSG_PEEK|unix.MSG_DONTWAIT)
		if err != nil || n != 0 {
			continue
		}
		HandleClientDisconnection(h)
		clients[i] = Handle{}
	}
}
