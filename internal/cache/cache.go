// Package cache provides the optional result cache in front of the
// humanize and detect entry points, keyed by content hash plus parameters.
// Concurrent computations of the same key are serialized; independent keys
// proceed in parallel.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"git.home.luguber.info/inful/prosal/internal/obs"
)

// Key identifies one (text, params) computation.
type Key string

// MakeKey hashes the operation kind, the text, and the JSON encoding of
// the parameters into a cache key.
func MakeKey(kind, text string, params any) Key {
	h := xxhash.New()
	_, _ = h.WriteString(kind)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(text)
	_, _ = h.WriteString("\x00")
	if params != nil {
		if data, err := json.Marshal(params); err == nil {
			_, _ = h.Write(data)
		}
	}
	return Key(fmt.Sprintf("%s:%016x", kind, h.Sum64()))
}

// Store persists cached payloads.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Put(ctx context.Context, key Key, payload []byte) error
	Close() error
}

// call tracks one in-flight computation.
type call struct {
	wg      sync.WaitGroup
	payload []byte
	err     error
}

// Cache fronts a Store with per-key in-flight deduplication.
type Cache struct {
	store    Store
	recorder obs.Recorder

	mu       sync.Mutex
	inflight map[Key]*call
}

// New creates a Cache over the given store.
func New(store Store, recorder obs.Recorder) *Cache {
	if recorder == nil {
		recorder = obs.NoopRecorder{}
	}
	return &Cache{store: store, recorder: recorder, inflight: map[Key]*call{}}
}

// GetOrCompute returns the cached payload for key, or runs compute exactly
// once per key even under concurrent callers, storing the result. Store
// errors degrade to computing without caching.
func (c *Cache) GetOrCompute(ctx context.Context, key Key, compute func() ([]byte, error)) ([]byte, error) {
	if payload, ok, err := c.store.Get(ctx, key); err == nil && ok {
		c.recorder.IncCacheResult(true)
		return payload, nil
	}
	c.recorder.IncCacheResult(false)

	c.mu.Lock()
	if existing, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		existing.wg.Wait()
		return existing.payload, existing.err
	}
	cl := &call{}
	cl.wg.Add(1)
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.payload, cl.err = compute()
	if cl.err == nil {
		_ = c.store.Put(ctx, key, cl.payload)
	}

	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
	cl.wg.Done()

	return cl.payload, cl.err
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}
