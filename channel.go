// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// noCopy is embedded in Channel and Cache to mark them move-only. It has no
// runtime effect; `go vet`'s copylocks check flags any accidental copy of a
// struct embedding it, the same idiom sync.Pool and sync.WaitGroup use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Channel is the typed façade over a rawChannel: a fixed-capacity,
// blocking-capable FIFO handle moved by pointer between goroutines. There
// is no value-copy constructor — every constructor in this package
// returns *Channel[T], so "copying" a channel means sharing the pointer
// (the safe operation), never duplicating ownership of the underlying
// ring buffer.
type Channel[T any] struct {
	_     noCopy
	raw   *rawChannel[T]
	cache *cacheHandle[T]
}

func newChannel[T any](flavor Flavor, capacity int) *Channel[T] {
	return &Channel[T]{raw: newRawChannel[T](capacity, flavor)}
}

// NewChannel creates a Channel[T] of the given flavor and capacity.
// Capacity 0 selects a rendezvous (unbuffered) channel.
func NewChannel[T any](flavor Flavor, capacity int) *Channel[T] {
	return newChannel[T](flavor, capacity)
}

// NewDefault creates an MPMC Channel[T] with DefaultCapacity.
func NewDefault[T any]() *Channel[T] {
	return newChannel[T](MPMC, DefaultCapacity)
}

// NewMPMC creates a multi-producer multi-consumer channel.
func NewMPMC[T any](capacity int) *Channel[T] { return newChannel[T](MPMC, capacity) }

// NewMPSC creates a multi-producer single-consumer channel.
func NewMPSC[T any](capacity int) *Channel[T] { return newChannel[T](MPSC, capacity) }

// NewSPSC creates a single-producer single-consumer channel.
func NewSPSC[T any](capacity int) *Channel[T] { return newChannel[T](SPSC, capacity) }

// TrySend attempts to enqueue v without blocking. Returns true iff v was
// enqueued; v is only consumed (moved into the ring buffer) on success.
func (c *Channel[T]) TrySend(v T) bool {
	return c.raw.ops.send(c.raw, v, false) == nil
}

// Send blocks until v is enqueued. Always consumes v.
func (c *Channel[T]) Send(v T) {
	_ = c.raw.ops.send(c.raw, v, true)
}

// SendIsolated is the isolated-transfer entry point: the caller asserts,
// by wrapping v with Isolate, that no other goroutine holds a reference to
// it, and the façade moves it across in one step.
func (c *Channel[T]) SendIsolated(v Isolated[T]) {
	c.Send(v.value)
}

// TrySendIsolated is the non-blocking counterpart of SendIsolated.
func (c *Channel[T]) TrySendIsolated(v Isolated[T]) bool {
	return c.TrySend(v.value)
}

// TryRecv attempts to dequeue a value without blocking. Returns the
// zero-value and false if the channel was empty.
func (c *Channel[T]) TryRecv() (T, bool) {
	v, err := c.raw.ops.recv(c.raw, false)
	return v, err == nil
}

// Recv blocks until a value is dequeued.
func (c *Channel[T]) Recv() T {
	v, _ := c.raw.ops.recv(c.raw, true)
	return v
}

// RecvOwned blocks until a value is dequeued, returning it wrapped in an
// Owned[T] transfer-safe handle.
func (c *Channel[T]) RecvOwned() Owned[T] {
	v, _ := c.raw.ops.recv(c.raw, true)
	return Owned[T]{value: v, ok: true}
}

// Peek returns an approximate current item count. The read is racy by
// design: a concurrent send or recv may change the count before or after
// the caller observes it.
func (c *Channel[T]) Peek() int {
	return int(c.raw.numItems())
}

// Len is an alias for Peek.
func (c *Channel[T]) Len() int {
	return c.Peek()
}

// Cap returns the channel's user-visible capacity (0 for rendezvous).
func (c *Channel[T]) Cap() int {
	return c.raw.capacity
}

// Flavor returns the channel's producer/consumer cardinality.
func (c *Channel[T]) Flavor() Flavor {
	return c.raw.flavor
}

// Open clears the closed flag. Returns false if the channel was already
// open (no-op, no mutation).
func (c *Channel[T]) Open() bool {
	return c.raw.closed.CompareAndSwapRelaxed(1, 0)
}

// Close sets the closed flag. Returns false if the channel was already
// closed (no-op, no mutation).
//
// Close does not wake goroutines blocked in Send/Recv: it is an advisory
// flag with relaxed ordering, not a broadcast. Callers needing cancellable
// blocking must design their receive loop around TryRecv and Closed(),
// not around Close unblocking a pending Recv.
func (c *Channel[T]) Close() bool {
	return c.raw.closed.CompareAndSwapRelaxed(0, 1)
}

// Closed reports the current value of the closed flag.
func (c *Channel[T]) Closed() bool {
	return c.raw.closed.LoadRelaxed() == 1
}

// Delete releases the channel. If it was obtained from a Cache, the raw
// channel is returned to its bucket (or dropped for garbage collection, if
// the bucket is saturated) and the handle is detached; otherwise Delete is
// a no-op and the channel is left to the garbage collector. Delete is
// idempotent: calling it twice does not double-free.
func (c *Channel[T]) Delete() {
	if c.cache == nil || c.raw == nil {
		return
	}
	c.cache.free(c.raw)
	c.raw = nil
	c.cache = nil
}
