// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"sync"
	"testing"
)

func TestChannelSendDrainOrder(t *testing.T) {
	ch := NewChannel()

	for i := int32(0); i < 10; i++ {
		if !ch.Send(Int32("seq", i)) {
			t.Fatalf("Send(%d) = false, want true", i)
		}
	}

	got := ch.Drain()
	if len(got) != 10 {
		t.Fatalf("Drain() returned %d updates, want 10", len(got))
	}
	for i, u := range got {
		v, ok := u.Int32()
		if !ok || v != int32(i) {
			t.Errorf("Drain()[%d] = %v, want seq=%d", i, u, i)
		}
	}
}

func TestChannelDrainEmpties(t *testing.T) {
	ch := NewChannel()
	ch.Send(Bool("paused", true))

	if got := ch.Drain(); len(got) != 1 {
		t.Fatalf("first Drain() returned %d updates, want 1", len(got))
	}
	if got := ch.Drain(); got != nil {
		t.Errorf("second Drain() = %v, want nil", got)
	}
	if ch.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", ch.Len())
	}
}

func TestChannelCloseDropsSends(t *testing.T) {
	ch := NewChannel()
	ch.Send(Float32("speed", 1.0))
	ch.Close()

	// Writers are not told anything beyond "not accepted".
	if ch.Send(Float32("speed", 2.0)) {
		t.Error("Send() after Close = true, want false")
	}
	if got := ch.Drain(); got != nil {
		t.Errorf("Drain() after Close = %v, want nil", got)
	}

	// Idempotent.
	ch.Close()
}

func TestChannelPerSenderFIFO(t *testing.T) {
	ch := NewChannel()

	const senders = 4
	const perSender = 100

	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func(sender int) {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				ch.Send(Int32("k", int32(sender*perSender+i)))
			}
		}(s)
	}
	wg.Wait()

	got := ch.Drain()
	if len(got) != senders*perSender {
		t.Fatalf("Drain() returned %d updates, want %d", len(got), senders*perSender)
	}

	// Updates from one sender must appear in that sender's send order.
	last := make(map[int]int32)
	for _, u := range got {
		v, _ := u.Int32()
		sender := int(v) / perSender
		if prev, ok := last[sender]; ok && v <= prev {
			t.Fatalf("sender %d out of order: %d after %d", sender, v, prev)
		}
		last[sender] = v
	}
}

func BenchmarkChannelSend(b *testing.B) {
	ch := NewChannel()
	u := Float32("speed", 2.5)
	b.ReportAllocs()
	for b.Loop() {
		ch.Send(u)
		if ch.Len() > 4096 {
			ch.Drain()
		}
	}
}
