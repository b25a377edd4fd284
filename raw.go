// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// rawChannel is the shared ring buffer object every goroutine with a
// reference to a Channel[T] ultimately operates on.
//
// Buffered channels sacrifice one slot (size = capacity+1) so that
// head == tail unambiguously means empty, without a separate counter that
// both producer and consumer would need to touch. Rendezvous channels
// (capacity 0) use a single slot where head alone (0 or 1) is the
// occupancy flag; tail is unused.
//
// head and tail are cache-line padded apart so a busy producer and a busy
// consumer never invalidate each other's cache line.
type rawChannel[T any] struct {
	_          pad
	head       atomix.Uint64
	_          pad
	tail       atomix.Uint64
	_          pad
	closed     atomix.Uint64 // 0 = open, 1 = closed; CAS-friendly (atomix has no Bool CAS)
	_          pad
	tailMu     sync.Mutex
	notFull    sync.Cond
	_          pad
	headMu     sync.Mutex
	notEmpty   sync.Cond
	_          pad
	buffer     []T
	size       uint64 // ring slot count: capacity+1, or 1 for rendezvous
	capacity   int    // user-visible capacity (N)
	flavor     Flavor
	ops        opsTable[T]
	owner      int64 // informational only; never consulted by any operation
}

func newRawChannel[T any](capacity int, flavor Flavor) *rawChannel[T] {
	validateCapacity(capacity)

	size := uint64(capacity) + 1
	if capacity == 0 {
		size = 1
	}

	c := &rawChannel[T]{
		buffer:   make([]T, size),
		size:     size,
		capacity: capacity,
		flavor:   flavor,
		ops:      dispatchTable[T](flavor),
		owner:    -1,
	}
	c.bindConds()
	return c
}

// bindConds wires notFull/notEmpty to the locks the send/recv protocols
// actually hold while waiting. Rendezvous channels synchronize both
// directions through headMu (the unbuffered path); buffered channels keep
// the two-lock split (tailLock for notFull, headLock for notEmpty).
func (c *rawChannel[T]) bindConds() {
	if c.size == 1 {
		c.notFull.L = &c.headMu
		c.notEmpty.L = &c.headMu
		return
	}
	c.notFull.L = &c.tailMu
	c.notEmpty.L = &c.headMu
}

// reset restores a channel to the empty, open state expected of a cache
// entry. The slice is cleared so a recycled channel does not keep a
// previous occupant's references alive for the GC.
func (c *rawChannel[T]) reset() {
	c.head.StoreRelaxed(0)
	c.tail.StoreRelaxed(0)
	c.closed.StoreRelaxed(0)
	var zero T
	for i := range c.buffer {
		c.buffer[i] = zero
	}
	c.owner = -1
}

// numItems returns the approximate occupancy. Racy unless the caller holds
// both locks; used for hint checks and Peek.
func (c *rawChannel[T]) numItems() uint64 {
	if c.size == 1 {
		return c.head.LoadAcquire()
	}
	tail := c.tail.LoadAcquire()
	head := c.head.LoadAcquire()
	return (c.size + tail - head) % c.size
}

func (c *rawChannel[T]) isFull() bool {
	if c.size == 1 {
		return c.head.LoadAcquire() == 1
	}
	return c.numItems() == c.size-1
}

func (c *rawChannel[T]) isEmpty() bool {
	if c.size == 1 {
		return c.head.LoadAcquire() == 0
	}
	return c.head.LoadAcquire() == c.tail.LoadAcquire()
}

// signalNotEmpty wakes a consumer parked on an empty channel. Taking
// headMu only to broadcast (rather than broadcasting unlocked) is what
// makes the wakeup race-free: see mpmcSend's comment for the argument.
func signalNotEmpty[T any](c *rawChannel[T]) {
	c.headMu.Lock()
	c.notEmpty.Broadcast()
	c.headMu.Unlock()
}
