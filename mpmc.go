// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// mpmcSend implements the MPMC blocking/non-blocking send protocol.
// Producers serialize on tailLock; consumers never contend on this path
// except briefly, to receive the notEmpty signal below.
func mpmcSend[T any](c *rawChannel[T], v T, blocking bool) error {
	if c.size == 1 {
		return rendezvousSend(c, v, blocking)
	}

	if !blocking && c.isFull() {
		return ErrWouldBlock
	}

	c.tailMu.Lock()
	if !blocking && c.isFull() {
		c.tailMu.Unlock()
		return ErrWouldBlock
	}
	for c.isFull() {
		c.notFull.Wait()
	}

	tail := c.tail.LoadRelaxed()
	c.buffer[tail] = v
	c.tail.StoreRelease(nextSlot(tail, c.size))
	c.tailMu.Unlock()

	// Acquiring headMu here (rather than calling Broadcast unlocked) is
	// what prevents a lost wakeup: a consumer that observed isEmpty()==true
	// right before this point is guaranteed to be inside notEmpty.Wait()
	// (and thus past headMu's internal unlock) by the time this Lock
	// succeeds, or to observe the new tail value once it next locks headMu.
	signalNotEmpty(c)
	return nil
}

// mpmcRecv implements the MPMC blocking/non-blocking recv protocol,
// symmetric with mpmcSend.
func mpmcRecv[T any](c *rawChannel[T], blocking bool) (T, error) {
	var zero T
	if c.size == 1 {
		return rendezvousRecv(c, blocking)
	}

	if !blocking && c.isEmpty() {
		return zero, ErrWouldBlock
	}

	c.headMu.Lock()
	if !blocking && c.isEmpty() {
		c.headMu.Unlock()
		return zero, ErrWouldBlock
	}
	for c.isEmpty() {
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

// rendezvousSend/rendezvousRecv implement the capacity-0 unbuffered path
// shared by all three flavors: both directions synchronize through
// headLock alone, and head ∈ {0,1} is the sole occupancy flag.
func rendezvousSend[T any](c *rawChannel[T], v T, blocking bool) error {
	if !blocking && c.head.LoadAcquire() == 1 {
		return ErrWouldBlock
	}

	c.headMu.Lock()
	defer c.headMu.Unlock()

	if !blocking && c.head.LoadAcquire() == 1 {
		return ErrWouldBlock
	}
	for c.head.LoadAcquire() == 1 {
		if !blocking {
			return ErrWouldBlock
		}
		c.notFull.Wait()
	}

	c.buffer[0] = v
	c.head.StoreRelease(1)
	c.notEmpty.Broadcast()
	return nil
}

func rendezvousRecv[T any](c *rawChannel[T], blocking bool) (T, error) {
	var zero T
	if !blocking && c.head.LoadAcquire() == 0 {
		return zero, ErrWouldBlock
	}

	c.headMu.Lock()
	defer c.headMu.Unlock()

	if !blocking && c.head.LoadAcquire() == 0 {
		return zero, ErrWouldBlock
	}
	for c.head.LoadAcquire() == 0 {
		if !blocking {
			return zero, ErrWouldBlock
		}
		c.notEmpty.Wait()
	}

	v := c.buffer[0]
	c.buffer[0] = zero
	c.head.StoreRelease(0)
	c.notFull.Broadcast()
	return v, nil
}
