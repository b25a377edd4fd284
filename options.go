// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// Flavor identifies the producer/consumer cardinality a channel is built
// for. It is fixed at construction and selects the send/recv protocol via
// the dispatch table in dispatch.go.
type Flavor uint8

const (
	// MPMC allows any number of concurrent producers and consumers.
	MPMC Flavor = iota
	// MPSC allows multiple producers but a single consumer goroutine.
	MPSC
	// SPSC allows exactly one producer goroutine and one consumer goroutine.
	SPSC
)

// String returns a readable flavor name, useful in test failures and logs.
func (f Flavor) String() string {
	switch f {
	case MPMC:
		return "MPMC"
	case MPSC:
		return "MPSC"
	case SPSC:
		return "SPSC"
	default:
		return "Flavor(unknown)"
	}
}

const (
	// DefaultCapacity is the capacity NewDefault uses.
	DefaultCapacity = 30

	// CacheLineSize is the padding inserted between head and tail (and
	// between the lock pairs) to avoid false sharing across producer and
	// consumer hot paths.
	CacheLineSize = 64

	// DefaultChannelCacheSize is the default number of recycled channels
	// kept per (capacity, flavor) bucket in a Cache. Zero disables caching.
	DefaultChannelCacheSize = 100

	// spinLimit bounds the busy-wait iterations MPSC/SPSC hot paths spend
	// polling their predicate before parking on the matching condition
	// variable. Turns the "bounded spin count" design note into a concrete,
	// testable constant instead of spinning forever.
	spinLimit = 64
)

// pad is cache-line padding, preventing false sharing between fields
// written by different goroutines (e.g. a consumer's head next to a
// producer's tail).
type pad [CacheLineSize]byte

// padShort pads out a single 8-byte atomic field to a full cache line.
type padShort [CacheLineSize - 8]byte

// Builder provides a fluent API for configuring and creating a Channel.
//
// Example:
//
//	ch := ichan.Build[Event](ichan.New(1024).SingleProducer().SingleConsumer()) // SPSC
//	ch := ichan.Build[Event](ichan.New(1024).SingleConsumer())                  // MPSC
//	ch := ichan.Build[Event](ichan.New(1024))                                   // MPMC
type Builder struct {
	capacity       int
	singleProducer bool
	singleConsumer bool
}

// New creates a channel builder with the given capacity. Capacity 0 selects
// a rendezvous (unbuffered) channel. Panics if capacity < 0.
func New(capacity int) *Builder {
	validateCapacity(capacity)
	return &Builder{capacity: capacity}
}

// SingleProducer declares that only one goroutine will send.
func (b *Builder) SingleProducer() *Builder {
	b.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will receive.
func (b *Builder) SingleConsumer() *Builder {
	b.singleConsumer = true
	return b
}

func (b *Builder) flavor() Flavor {
	switch {
	case b.singleProducer && b.singleConsumer:
		return SPSC
	case b.singleConsumer:
		return MPSC
	default:
		return MPMC
	}
}

// Build creates a Channel[T] with algorithm selection from the builder's
// constraints:
//
//	SingleProducer + SingleConsumer → SPSC
//	SingleConsumer only             → MPSC
//	neither                         → MPMC
//
// There is no SPMC flavor; SingleProducer alone still selects MPMC.
func Build[T any](b *Builder) *Channel[T] {
	return newChannel[T](b.flavor(), b.capacity)
}

// BuildSPSC creates an SPSC channel with its constraints checked at run time.
// Panics if the builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *Channel[T] {
	if !b.singleProducer || !b.singleConsumer {
		panic("ichan: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return newChannel[T](SPSC, b.capacity)
}

// BuildMPSC creates an MPSC channel with its constraints checked at run time.
// Panics if the builder is not configured with SingleConsumer() only.
func BuildMPSC[T any](b *Builder) *Channel[T] {
	if b.singleProducer || !b.singleConsumer {
		panic("ichan: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	return newChannel[T](MPSC, b.capacity)
}

// BuildMPMC creates an MPMC channel with its constraints checked at run time.
// Panics if the builder has any constraints set.
func BuildMPMC[T any](b *Builder) *Channel[T] {
	if b.singleProducer || b.singleConsumer {
		panic("ichan: BuildMPMC requires no constraints")
	}
	return newChannel[T](MPMC, b.capacity)
}

func validateCapacity(capacity int) {
	if capacity < 0 {
		panic("ichan: capacity must be >= 0")
	}
}

// nextSlot advances a ring index modulo size.
func nextSlot(i, size uint64) uint64 {
	i++
	if i == size {
		return 0
	}
	return i
}
