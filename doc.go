// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ichan provides fixed-capacity, blocking-capable FIFO channels for
// moving typed payloads between goroutines.
//
// The package offers three channel flavors, chosen by producer/consumer
// cardinality:
//
//   - SPSC: Single-Producer Single-Consumer
//   - MPSC: Multi-Producer Single-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// A fourth mode, rendezvous (capacity 0), is available on every flavor:
// values pass through a single slot. A send fills the slot when it is
// empty (TrySend fails while it is occupied), and a Recv empties it.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	ch := ichan.NewSPSC[Event](1024)
//	ch := ichan.NewMPMC[*Request](4096)
//	rv := ichan.NewMPMC[int](0) // rendezvous
//
// Builder API auto-selects the flavor from declared constraints:
//
//	ch := ichan.Build[Event](ichan.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	ch := ichan.Build[Event](ichan.New(1024).SingleConsumer())                  // → MPSC
//	ch := ichan.Build[Event](ichan.New(1024))                                   // → MPMC
//
// # Basic Usage
//
// All three flavors share the same Channel[T] interface:
//
//	ch := ichan.NewMPMC[int](1024)
//
//	// Non-blocking send
//	if !ch.TrySend(42) {
//	    // channel full - handle backpressure
//	}
//
//	// Blocking send - waits until there is room
//	ch.Send(43)
//
//	// Non-blocking recv
//	v, ok := ch.TryRecv()
//	if !ok {
//	    // channel empty - try again later
//	}
//
//	// Blocking recv - waits until a value arrives
//	v = ch.Recv()
//
// # Common Patterns
//
// Pipeline stage (SPSC):
//
//	ch := ichan.NewSPSC[Data](1024)
//
//	go func() { // producer
//	    for data := range input {
//	        ch.Send(data) // blocks on backpressure
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        process(ch.Recv())
//	    }
//	}()
//
// Event aggregation (MPSC):
//
//	ch := ichan.NewMPSC[Event](4096)
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            ch.Send(ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() { // single aggregator
//	    for {
//	        aggregate(ch.Recv())
//	    }
//	}()
//
// Worker pool (MPMC):
//
//	jobs := ichan.NewMPMC[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            jobs.Recv().Run()
//	        }
//	    }()
//	}
//
//	func Submit(j Job) { jobs.Send(j) }
//
// Rendezvous handoff (any flavor, capacity 0):
//
//	rv := ichan.NewSPSC[Result](0)
//	go func() { rv.Send(compute()) }()
//	result := rv.Recv() // blocks until the producer arrives
//
// # Move Semantics
//
// Send consumes its argument: once copied into the ring buffer, the source
// slot a recv reads from is overwritten with the zero value before the
// value is handed to the caller, so a T holding pointers does not keep the
// buffer's previous occupant reachable. RecvOwned wraps the dequeued value
// in an [Owned] handle for callers that want an explicit one-shot transfer
// object instead of a bare return value.
//
// The SendIsolated/TrySendIsolated entry points exist for callers that can
// prove, by construction, that the value they are sending has no other
// live reference anywhere (see [Isolate]); unlike Send, this formalizes the
// ownership-transfer contract the move is making.
//
// # Channel Cache
//
// Construction allocates a ring buffer plus two mutex/condvar pairs, which
// is comparatively expensive next to a single Send/Recv. [Cache] recycles
// channels by exact (capacity, flavor) shape instead of letting them be
// garbage collected and reallocated:
//
//	cache := ichan.NewCache[Job]()
//	defer cache.Flush() // required: goroutines have no exit hook
//
//	ch := cache.Get(ichan.MPMC, 256)
//	// ... use ch ...
//	ch.Delete() // returns ch's raw channel to cache, if there's room
//
// A Cache is not safe for concurrent use; the idiom is one Cache per
// worker goroutine, matching the thread-local design this mirrors.
//
// # Blocking and Close
//
// Send/Recv block indefinitely; there is no cancellation or timeout
// support. Close only flips an advisory flag — it does not wake a
// goroutine already parked in Send or Recv. Callers that need a channel
// to participate in graceful shutdown should poll TryRecv/Closed from the
// consumer side rather than relying on Close to interrupt a blocked Recv.
//
// # Algorithm Selection
//
// MPMC uses two locks (producers serialize on one, consumers on the other)
// so enqueue and dequeue can proceed concurrently. MPSC and SPSC keep the
// same producer-side lock where more than one producer exists, but their
// receive (and, for SPSC, send) hot path does not take its own side's
// lock: it busy-waits with a CPU relaxation hint for a bounded number of
// iterations, then parks on the matching condition variable if the channel
// stays full/empty. After each item it does briefly lock the opposite
// side's mutex to broadcast that side's condition variable, so the hot
// path is lock-light rather than lock-free. A slow peer still sleeps
// instead of spinning forever.
//
// # Thread Safety
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPSC: multiple producer goroutines, one consumer goroutine
//   - MPMC: multiple producer and consumer goroutines
//
// Violating these constraints (e.g. two goroutines calling Recv on an
// SPSC channel) is undefined behavior: it can corrupt the ring buffer or
// duplicate/drop items silently.
//
// # Capacity
//
// Capacity is exact: NewXXX[T](5) holds exactly 5 items, backed by 6 ring
// slots internally (one sacrificed to distinguish full from empty without
// a separate counter). Capacity 0 selects rendezvous mode. There is no
// power-of-two rounding and no dynamic resizing.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic head/tail/closed
// fields with explicit memory ordering, [code.hybscloud.com/spin] for the
// CPU pause hint in the MPSC/SPSC busy-wait loops, and
// [code.hybscloud.com/iox] for the internal ErrWouldBlock-style sentinel
// used on the non-blocking fast path before it is translated to the bool
// TrySend/TryRecv return.
package ichan
