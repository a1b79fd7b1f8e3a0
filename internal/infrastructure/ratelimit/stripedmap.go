package ratelimit

import (
	"hash/fnv"
	"sync"
)

const shardCount = 32

// stripedMap is a string-keyed map striped across independent locks so
// that concurrent updates to unrelated keys never contend. Per-key
// operations run under the owning shard's lock, giving the per-IP
// atomicity the limiters require.
type stripedMap[V any] struct {
	shards [shardCount]struct {
		mu sync.Mutex
		m  map[string]*V
	}
}

func newStripedMap[V any]() *stripedMap[V] {
	sm := &stripedMap[V]{}
	for i := range sm.shards {
		sm.shards[i].m = make(map[string]*V)
	}
	return sm
}

func (sm *stripedMap[V]) shardFor(key string) *struct {
	mu sync.Mutex
	m  map[string]*V
} {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &sm.shards[h.Sum32()%shardCount]
}

// update runs fn with the value for key (nil when absent) under the
// shard lock. fn returns the value to store; returning nil deletes.
func (sm *stripedMap[V]) update(key string, fn func(v *V) *V) {
	shard := sm.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	next := fn(shard.m[key])
	if next == nil {
		delete(shard.m, key)
	} else {
		shard.m[key] = next
	}
}

func (sm *stripedMap[V]) delete(key string) {
	shard := sm.shardFor(key)
	shard.mu.Lock()
	delete(shard.m, key)
	shard.mu.Unlock()
}
