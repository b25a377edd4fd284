// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// opsTable is the per-channel dispatch table: the send/recv protocol is
// resolved once, at construction, from the channel's flavor, and never
// changes afterward. Channel[T]'s façade methods call through it instead
// of branching on flavor on every operation.
type opsTable[T any] struct {
	send func(c *rawChannel[T], v T, blocking bool) error
	recv func(c *rawChannel[T], blocking bool) (T, error)
}

// dispatchTable builds the 3-entry flavor table. MPSC reuses the MPMC send
// path verbatim (multiple producers still serialize identically either
// way) and only overrides recv with its lock-light single-consumer
// protocol.
func dispatchTable[T any](f Flavor) opsTable[T] {
	switch f {
	case MPMC:
		return opsTable[T]{send: mpmcSend[T], recv: mpmcRecv[T]}
	case MPSC:
		return opsTable[T]{send: mpmcSend[T], recv: mpscRecv[T]}
	case SPSC:
		return opsTable[T]{send: spscSend[T], recv: spscRecv[T]}
	default:
		panic("ichan: invalid flavor")
	}
}
