// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// Sender is the producer half of a Channel[T]. Splitting it out lets a
// function accept "something I can push T into" without also granting it
// the ability to drain the channel.
//
// Thread safety depends on the flavor the concrete Channel[T] was built
// with:
//   - SPSC: single producer only
//   - MPSC/MPMC: multiple producers safe
type Sender[T any] interface {
	// TrySend attempts to enqueue v without blocking. Returns true iff v
	// was enqueued.
	TrySend(v T) bool
	// Send blocks until v is enqueued.
	Send(v T)
}

// Receiver is the consumer half of a Channel[T].
//
// Thread safety depends on the flavor the concrete Channel[T] was built
// with:
//   - SPSC/MPSC: single consumer only
//   - MPMC: multiple consumers safe
type Receiver[T any] interface {
	// TryRecv attempts to dequeue a value without blocking. Returns the
	// zero-value and false if the channel was empty.
	TryRecv() (T, bool)
	// Recv blocks until a value is dequeued.
	Recv() T
}

// Channeler is the combined interface a *Channel[T] satisfies. Code that
// needs to accept a channel-like value without committing to the concrete
// type (for example, to swap in a test double) should depend on Channeler,
// Sender, or Receiver rather than *Channel[T] directly.
type Channeler[T any] interface {
	Sender[T]
	Receiver[T]
	Cap() int
	Len() int
	Flavor() Flavor
	Open() bool
	Close() bool
	Closed() bool
}

var (
	_ Channeler[int] = (*Channel[int])(nil)
	_ Sender[int]    = (*Channel[int])(nil)
	_ Receiver[int]  = (*Channel[int])(nil)
)
