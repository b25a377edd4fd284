// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan_test

import (
	"testing"

	"code.hybscloud.com/ichan"
)

// =============================================================================
// Basic Operations
// =============================================================================

func TestSPSCBasic(t *testing.T) {
	ch := ichan.NewSPSC[int](3)

	if ch.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", ch.Cap())
	}

	for i := range 3 {
		if !ch.TrySend(i + 100) {
			t.Fatalf("TrySend(%d): want true", i)
		}
	}

	if ch.TrySend(999) {
		t.Fatal("TrySend on full: want false")
	}

	for i := range 3 {
		val, ok := ch.TryRecv()
		if !ok {
			t.Fatalf("TryRecv(%d): want ok", i)
		}
		if val != i+100 {
			t.Fatalf("TryRecv(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, ok := ch.TryRecv(); ok {
		t.Fatal("TryRecv on empty: want false")
	}
}

func TestMPSCBasic(t *testing.T) {
	ch := ichan.NewMPSC[int](3)

	for i := range 3 {
		if !ch.TrySend(i + 100) {
			t.Fatalf("TrySend(%d): want true", i)
		}
	}

	if ch.TrySend(999) {
		t.Fatal("TrySend on full: want false")
	}

	for i := range 3 {
		val, ok := ch.TryRecv()
		if !ok {
			t.Fatalf("TryRecv(%d): want ok", i)
		}
		if val != i+100 {
			t.Fatalf("TryRecv(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, ok := ch.TryRecv(); ok {
		t.Fatal("TryRecv on empty: want false")
	}
}

func TestMPMCBasic(t *testing.T) {
	ch := ichan.NewMPMC[int](3)

	for i := range 3 {
		if !ch.TrySend(i + 100) {
			t.Fatalf("TrySend(%d): want true", i)
		}
	}

	if ch.TrySend(999) {
		t.Fatal("TrySend on full: want false")
	}

	for i := range 3 {
		val, ok := ch.TryRecv()
		if !ok {
			t.Fatalf("TryRecv(%d): want ok", i)
		}
		if val != i+100 {
			t.Fatalf("TryRecv(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, ok := ch.TryRecv(); ok {
		t.Fatal("TryRecv on empty: want false")
	}
}

// =============================================================================
// Rendezvous (capacity 0)
// =============================================================================

func TestRendezvousTrySendSingleSlot(t *testing.T) {
	for _, flavor := range []ichan.Flavor{ichan.SPSC, ichan.MPSC, ichan.MPMC} {
		ch := ichan.NewChannel[int](flavor, 0)
		if ch.Cap() != 0 {
			t.Fatalf("%s: Cap: got %d, want 0", flavor, ch.Cap())
		}
		if _, ok := ch.TryRecv(); ok {
			t.Fatalf("%s: TryRecv on empty rendezvous: want false", flavor)
		}
		if !ch.TrySend(1) {
			t.Fatalf("%s: TrySend into the empty slot: want true", flavor)
		}
		if ch.TrySend(2) {
			t.Fatalf("%s: TrySend while the slot is occupied: want false", flavor)
		}
		if v, ok := ch.TryRecv(); !ok || v != 1 {
			t.Fatalf("%s: TryRecv: got (%d, %v), want (1, true)", flavor, v, ok)
		}
	}
}

func TestRendezvousBlockingHandoff(t *testing.T) {
	ch := ichan.NewSPSC[int](0)
	done := make(chan int)
	go func() {
		done <- ch.Recv()
	}()

	ch.Send(7)
	if got := <-done; got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

// =============================================================================
// Wrap-Around Tests
// =============================================================================

func TestSPSCWrapAround(t *testing.T) {
	ch := ichan.NewSPSC[int](4)

	for round := range 10 {
		for i := range 4 {
			if !ch.TrySend(round*100 + i) {
				t.Fatalf("round %d send %d: want true", round, i)
			}
		}
		for i := range 4 {
			val, ok := ch.TryRecv()
			if !ok {
				t.Fatalf("round %d recv %d: want ok", round, i)
			}
			if want := round*100 + i; val != want {
				t.Fatalf("round %d recv %d: got %d, want %d", round, i, val, want)
			}
		}
	}
}

func TestMPMCWrapAround(t *testing.T) {
	ch := ichan.NewMPMC[int](4)

	for round := range 10 {
		for i := range 4 {
			if !ch.TrySend(round*100 + i) {
				t.Fatalf("round %d send %d: want true", round, i)
			}
		}
		for i := range 4 {
			val, ok := ch.TryRecv()
			if !ok {
				t.Fatalf("round %d recv %d: want ok", round, i)
			}
			if want := round*100 + i; val != want {
				t.Fatalf("round %d recv %d: got %d, want %d", round, i, val, want)
			}
		}
	}
}

// =============================================================================
// Edge Cases - Zero values, pointers
// =============================================================================

func TestZeroValue(t *testing.T) {
	for _, flavor := range []ichan.Flavor{ichan.SPSC, ichan.MPSC, ichan.MPMC} {
		ch := ichan.NewChannel[int](flavor, 4)
		if !ch.TrySend(0) {
			t.Fatalf("%s: send 0: want true", flavor)
		}
		val, ok := ch.TryRecv()
		if !ok {
			t.Fatalf("%s: recv: want ok", flavor)
		}
		if val != 0 {
			t.Fatalf("%s: got %d, want 0", flavor, val)
		}
	}
}

func TestNilPointerValue(t *testing.T) {
	ch := ichan.NewMPMC[*int](4)

	if !ch.TrySend(nil) {
		t.Fatal("send nil: want true")
	}
	ptr, ok := ch.TryRecv()
	if !ok {
		t.Fatal("recv: want ok")
	}
	if ptr != nil {
		t.Fatalf("got %v, want nil", ptr)
	}
}

// Recv clears the slot on dequeue so a stale pointer isn't kept alive by
// the ring buffer. From outside the package this checks the observable
// part: the pointer comes back intact and the channel reports empty.
func TestRecvClearsSlot(t *testing.T) {
	ch := ichan.NewMPMC[*int](1)
	v := 42
	ch.TrySend(&v)
	got := ch.Recv()
	if got != &v {
		t.Fatalf("got %v, want %p", got, &v)
	}
	if ch.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", ch.Len())
	}
}

// =============================================================================
// Capacity Tests
// =============================================================================

func TestCapacityExact(t *testing.T) {
	tests := []int{1, 2, 3, 5, 7, 8, 9, 100, 1000}

	for _, capacity := range tests {
		ch := ichan.NewMPMC[int](capacity)
		if ch.Cap() != capacity {
			t.Fatalf("NewMPMC(%d).Cap() = %d, want %d", capacity, ch.Cap(), capacity)
		}
	}
}

func TestPanicOnNegativeCapacity(t *testing.T) {
	tests := []struct {
		name   string
		create func()
	}{
		{"SPSC", func() { ichan.NewSPSC[int](-1) }},
		{"MPSC", func() { ichan.NewMPSC[int](-1) }},
		{"MPMC", func() { ichan.NewMPMC[int](-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for negative capacity")
				}
			}()
			tt.create()
		})
	}
}

// =============================================================================
// Interface Compliance
// =============================================================================

func TestChannelerInterface(t *testing.T) {
	var _ ichan.Channeler[int] = ichan.NewMPMC[int](8)
	var _ ichan.Sender[int] = ichan.NewMPSC[int](8)
	var _ ichan.Receiver[int] = ichan.NewSPSC[int](8)
}

// =============================================================================
// Move Semantics - Owned / Isolated
// =============================================================================

func TestRecvOwned(t *testing.T) {
	ch := ichan.NewMPMC[string](4)
	ch.Send("payload")

	owned := ch.RecvOwned()
	v, ok := owned.Take()
	if !ok {
		t.Fatal("Take: want ok")
	}
	if v != "payload" {
		t.Fatalf("Take: got %q, want %q", v, "payload")
	}
}

func TestRecvOwnedZeroValue(t *testing.T) {
	var owned ichan.Owned[int]
	if _, ok := owned.Take(); ok {
		t.Fatal("Take on zero-value Owned: want ok=false")
	}
	owned.Discard() // must not panic
}

func TestSendIsolated(t *testing.T) {
	ch := ichan.NewSPSC[int](4)

	if !ch.TrySendIsolated(ichan.Isolate(7)) {
		t.Fatal("TrySendIsolated: want true")
	}
	if v := ch.Recv(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}

	ch.SendIsolated(ichan.Isolate(9))
	if v := ch.Recv(); v != 9 {
		t.Fatalf("got %d, want 9", v)
	}
}
