// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

import "code.hybscloud.com/spin"

// spscSend implements the SPSC send protocol. Both sides are unique, so
// neither takes its own side's lock on the hot path: the producer
// busy-waits with a CPU relaxation hint on the fullness predicate, copies,
// publishes the new tail with a release store (StoreRelease, not a
// sequentially-consistent fence), and then locks headMu to broadcast the
// consumer's condvar after every send, whether or not the consumer is parked.
func spscSend[T any](c *rawChannel[T], v T, blocking bool) error {
	if c.size == 1 {
		return rendezvousSend(c, v, blocking)
	}

	sw := spin.Wait{}
	for i := 0; i < spinLimit; i++ {
		tail := c.tail.LoadRelaxed()
		if nextSlot(tail, c.size) != c.head.LoadAcquire() {
			c.buffer[tail] = v
			c.tail.StoreRelease(nextSlot(tail, c.size))
			signalNotEmpty(c)
			return nil
		}
		if !blocking {
			return ErrWouldBlock
		}
		sw.Once()
	}

	c.tailMu.Lock()
	for nextSlot(c.tail.LoadRelaxed(), c.size) == c.head.LoadAcquire() {
		if !blocking {
			c.tailMu.Unlock()
			return ErrWouldBlock
		}
		c.notFull.Wait()
	}
	tail := c.tail.LoadRelaxed()
	c.buffer[tail] = v
	c.tail.StoreRelease(nextSlot(tail, c.size))
	c.tailMu.Unlock()

	signalNotEmpty(c)
	return nil
}

// spscRecv implements the SPSC recv protocol, symmetric with spscSend.
func spscRecv[T any](c *rawChannel[T], blocking bool) (T, error) {
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
