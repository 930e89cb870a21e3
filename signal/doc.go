// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package signal carries typed value updates from reactive UI state into an
// embedded renderer's update loop.
//
// An Update is a small tagged union: a key naming the watched value and a
// payload of one of six fixed kinds (bool, float32, float64, int32, uint32,
// text). The kind set is deliberately closed rather than extensible, so
// consumers can switch exhaustively over Kind.
//
// A Channel is the conduit: many writers, a single reader, unbounded and
// non-blocking on both sides. UI effect callbacks Send without ever waiting
// on the render loop; the renderer Drains everything queued at the top of
// its own per-frame update. Once the reader is gone and the channel closed,
// sends are silently dropped; a closed channel is not an error condition
// for the writer.
//
//	ch := signal.NewChannel()
//
//	// UI effect:
//	ch.Send(signal.Float32("speed", 2.5))
//
//	// Renderer, once per frame:
//	for _, u := range ch.Drain() {
//	    // apply u
//	}
package signal
