// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import "sync"

// Channel is a many-writer, single-reader, unbounded conduit for Updates.
//
// Send never blocks: writers on the UI thread must not contend with the
// paint thread beyond a brief mutex hold. Drain never blocks either; the
// renderer calls it once per frame and processes whatever was queued.
//
// FIFO order is guaranteed per sender (a single mutex makes the order total
// across senders, which is stronger than the contract requires). No
// ordering is promised between updates queued through different Channels.
type Channel struct {
	mu     sync.Mutex
	queue  []Update
	closed bool
}

// NewChannel creates an open, empty channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Send enqueues an update. It reports whether the update was accepted;
// after Close it returns false and the update is dropped. Writers may
// ignore the result: a departed reader is not an error condition.
func (c *Channel) Send(u Update) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.queue = append(c.queue, u)
	return true
}

// Drain removes and returns all queued updates in send order. It returns
// nil when nothing is queued. The returned slice is owned by the caller;
// the channel starts a fresh queue.
func (c *Channel) Drain() []Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.queue
	c.queue = nil
	return q
}

// Len returns the number of queued updates.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Close marks the reader gone. Subsequent sends are dropped silently and
// anything still queued is discarded. Close is idempotent.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.queue = nil
}
