// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// Owned is the transfer-safe wrapper RecvOwned returns. By the time a
// value reaches here its source slot has already been zeroed by the recv
// protocol, so Owned's only job is to give the receiver an explicit,
// one-shot handle instead of an implicit return value.
type Owned[T any] struct {
	value T
	ok    bool
}

// Take returns the wrapped value. ok is false for a zero-value Owned[T]
// (e.g. one never populated by RecvOwned).
func (o Owned[T]) Take() (T, bool) {
	return o.value, o.ok
}

// Discard drops the wrapped value without retrieving it. It exists for
// symmetry with Take; Go's GC makes an explicit free unnecessary once the
// Owned value goes out of scope.
func (o Owned[T]) Discard() {}

// Isolated wraps a value the caller has proven is unreferenced by any
// other goroutine, authorizing SendIsolated/TrySendIsolated to move it
// across the channel in one step. Go has no linear-type system to enforce
// the proof; Isolated documents the contract the caller is making.
type Isolated[T any] struct {
	value T
}

// Isolate wraps v as an isolated transfer.
func Isolate[T any](v T) Isolated[T] {
	return Isolated[T]{value: v}
}
