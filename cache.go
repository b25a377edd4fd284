// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ichan

// Cache is a free list of recycled channels keyed by (capacity, flavor).
// Go's generics already make a Cache[T] type-specific, so the per-item
// byte-size axis a cache key would otherwise need collapses into T
// itself — only capacity and flavor vary within one Cache.
//
// Go goroutines have no thread-local storage and no thread-exit hook, so
// a Cache is an explicit value the caller constructs and owns — typically
// one per worker goroutine — and must Flush before that goroutine exits.
// A Cache is not safe for concurrent use from multiple goroutines.
type Cache[T any] struct {
	_            noCopy
	buckets      map[cacheKey][]*rawChannel[T]
	maxPerBucket int
}

type cacheKey struct {
	capacity int
	flavor   Flavor
}

// cacheHandle is what a Channel obtained from a Cache holds on to, so
// Channel.Delete can return the raw channel without depending on Cache's
// generic type parameter matching exactly (it always does, since Cache[T]
// only ever hands out Channel[T]).
type cacheHandle[T any] struct {
	c *Cache[T]
}

func (h *cacheHandle[T]) free(raw *rawChannel[T]) {
	h.c.free(raw)
}

// NewCache creates a channel cache with DefaultChannelCacheSize entries per
// bucket.
func NewCache[T any]() *Cache[T] {
	return NewCacheSize[T](DefaultChannelCacheSize)
}

// NewCacheSize creates a channel cache with at most maxPerBucket recycled
// channels per (capacity, flavor) bucket. A size of 0 disables caching:
// Get always allocates fresh, and free always drops its argument.
func NewCacheSize[T any](maxPerBucket int) *Cache[T] {
	return &Cache[T]{
		buckets:      make(map[cacheKey][]*rawChannel[T]),
		maxPerBucket: maxPerBucket,
	}
}

// Get returns a Channel[T] of the given capacity and flavor, reusing a
// cached rawChannel if one with a matching shape is available. A channel
// returned from the cache is always observed empty and open.
func (ch *Cache[T]) Get(flavor Flavor, capacity int) *Channel[T] {
	key := cacheKey{capacity: capacity, flavor: flavor}

	if ch.maxPerBucket > 0 {
		if bucket, ok := ch.buckets[key]; ok && len(bucket) > 0 {
			raw := bucket[len(bucket)-1]
			ch.buckets[key] = bucket[:len(bucket)-1]
			return &Channel[T]{raw: raw, cache: &cacheHandle[T]{c: ch}}
		}
	}

	raw := newRawChannel[T](capacity, flavor)
	if ch.maxPerBucket > 0 {
		if _, ok := ch.buckets[key]; !ok {
			ch.buckets[key] = make([]*rawChannel[T], 0, ch.maxPerBucket)
		}
	}
	return &Channel[T]{raw: raw, cache: &cacheHandle[T]{c: ch}}
}

// free returns raw to its bucket if there is room, or drops it for the
// garbage collector otherwise. Go's GC plays the role an explicit
// lock/condvar-teardown-and-release step would play in a non-GC'd runtime.
func (ch *Cache[T]) free(raw *rawChannel[T]) {
	if ch.maxPerBucket <= 0 {
		return
	}
	key := cacheKey{capacity: raw.capacity, flavor: raw.flavor}
	bucket := ch.buckets[key]
	if len(bucket) >= ch.maxPerBucket {
		return
	}
	raw.reset()
	ch.buckets[key] = append(bucket, raw)
}

// Flush drops every cached channel. It must be called before the owning
// goroutine exits since Go has no automatic hook to call this for the
// caller; skipping it leaks the recycled channels.
func (ch *Cache[T]) Flush() {
	ch.buckets = make(map[cacheKey][]*rawChannel[T])
}

// BucketStats reports the number of recycled channels held for one
// (capacity, flavor) shape. Returned by Stats for tests and diagnostics.
type BucketStats struct {
	Capacity int
	Flavor   Flavor
	Count    int
}

// Stats returns the current population of every bucket. It is ambient
// (observability), not part of the cache's allocate/free contract.
func (ch *Cache[T]) Stats() []BucketStats {
	stats := make([]BucketStats, 0, len(ch.buckets))
	for key, bucket := range ch.buckets {
		stats = append(stats, BucketStats{Capacity: key.capacity, Flavor: key.flavor, Count: len(bucket)})
	}
	return stats
}
