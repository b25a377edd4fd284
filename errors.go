// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the non-blocking fast path could not proceed
// immediately (the channel was full on TrySend, or empty on TryRecv).
//
// It is an internal sentinel: the raw send/recv protocols return it, but it
// never crosses the Channel[T] façade. TrySend/TryRecv/Open/Close report
// success with a plain bool, per the external interface.
//
// This is an alias for [iox.ErrWouldBlock].
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is ErrWouldBlock (or wraps it).
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
