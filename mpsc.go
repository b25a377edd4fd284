// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

import "code.hybscloud.com/spin"

// mpscRecv implements the MPSC receive protocol. The consumer is unique,
// so the hot path never acquires headLock: it busy-waits with a CPU
// relaxation hint on the emptiness predicate (an acquire load of tail),
// then publishes the new head with a release store; neither step is a
// sequentially-consistent fence.
//
// If the channel stays empty past spinLimit iterations, the consumer parks
// on notEmpty rather than spinning forever, trading a bounded amount of
// CPU for the ability to park a consumer that would otherwise spin against
// a genuinely idle producer.
func mpscRecv[T any](c *rawChannel[T], blocking bool) (T, error) {
	var zero T
	if c.size == 1 {
		return rendezvousRecv(c, blocking)
	}

	sw := spin.Wait{}
	for i := 0; i < spinLimit; i++ {
		head := c.head.LoadRelaxed()
		if head != c.tail.LoadAcquire() {
			v := c.buffer[head]
			c.buffer[head] = zero
			c.head.StoreRelease(nextSlot(head, c.size))
			signalNotFull(c)
			return v, nil
		}
		if !blocking {
			return zero, ErrWouldBlock
		}
		sw.Once()
	}

	c.headMu.Lock()
	for c.head.LoadRelaxed() == c.tail.LoadAcquire() {
		if !blocking {
			c.headMu.Unlock()
			return zero, ErrWouldBlock
		}
		c.notEmpty.Wait()
	}
	head := c.head.LoadRelaxed()
	v := c.buffer[head]
	c.buffer[head] = zero
	c.head.StoreRelease(nextSlot(head, c.size))
	c.headMu.Unlock()

	signalNotFull(c)
	return v, nil
}

// signalNotFull wakes a producer parked on a full channel. Taking tailMu
// only to broadcast, rather than broadcasting unlocked, is what makes the
// wakeup race-free — see the comment on mpmcSend's equivalent step.
func signalNotFull[T any](c *rawChannel[T]) {
	c.tailMu.Lock()
	c.notFull.Broadcast()
	c.tailMu.Unlock()
}
