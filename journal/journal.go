// Copyright (c) 2025 PCW-Learning
// SPDX-License-Identifier: MIT

// Package journal records connection lifecycle events in a bounded,
// thread-safe FIFO. It is the observable side effect of disconnect
// handling in the sock package: tests and monitoring loops drain it
// instead of scraping log output.
package journal

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Kind labels an event.
type Kind string

// KindDisconnect marks a connection torn down after the peer went away.
const KindDisconnect Kind = "disconnect"

// Event is one recorded connection event.
type Event struct {
	FD   int
	Kind Kind
	At   time.Time
}

// Journal is a bounded FIFO of events. Recording into a full journal
// evicts the oldest event, so a journal nobody drains costs a fixed
// amount of memory.
type Journal struct {
	mu  sync.Mutex
	max int
	q   *queue.Queue
}

// New creates a journal holding at most max events.
func New(max int) *Journal {
	if max <= 0 {
		max = 64
	}
	return &Journal{max: max, q: queue.New()}
}

// Record appends an event, evicting the oldest if the journal is full.
func (j *Journal) Record(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for j.q.Length() >= j.max {
		j.q.Remove()
	}
	j.q.Add(e)
}

// Len returns the number of recorded, undrained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}

// Drain removes and returns all recorded events, oldest first.
func (j *Journal) Drain() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.q.Length())
	for j.q.Length() > 0 {
		out = append(out, j.q.Remove().(Event))
	}
	return out
}
