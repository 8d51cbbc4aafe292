// Package areacache is a read-through memoization layer over olc.Decode for
// applications that resolve the same codes repeatedly (tile servers, geocoding
// pipelines). A code names an immutable area, so entries can never go stale;
// there is no invalidation, only eviction by the underlying store.
//
// Components:
//   - provider.Provider: byte store with TTL (Ristretto, BigCache).
//   - codec.Codec: (de)serializes olc.Area <-> []byte.
//
// Entries are framed (see internal/wire) so foreign or corrupt bytes in a
// shared store are detected, deleted and treated as misses.
package areacache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/windlessuser/olc"
	"github.com/windlessuser/olc/codec"
	"github.com/windlessuser/olc/internal/wire"
	"github.com/windlessuser/olc/provider"
)

// SetCostFunc computes the eviction cost reported to the provider for a
// framed entry.
type SetCostFunc func(key string, raw []byte) int64

// Options tune the cache. Provider and Codec are required; others have
// sensible defaults.
type Options struct {
	// Required.
	Provider provider.Provider
	Codec    codec.Codec

	// Namespace isolates keyspaces when several caches share one store.
	// Defaults to "olc".
	Namespace string

	Logger   Logger        // nil => NopLogger
	TTL      time.Duration // 0 => 1h
	Disabled bool          // default false (enabled)
	SetCost  SetCostFunc   // default: frame size in bytes
}

// Cache memoizes decode results. Safe for concurrent use when the provider
// is.
type Cache struct {
	ns       string
	provider provider.Provider
	codec    codec.Codec
	log      Logger
	enabled  bool
	ttl      time.Duration
	setCost  SetCostFunc
}

func New(opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("areacache: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("areacache: codec is required")
	}

	c := &Cache{
		ns:       coalesce(opts.Namespace, "olc"),
		provider: opts.Provider,
		codec:    opts.Codec,
		enabled:  !opts.Disabled,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.ttl = coalesce(opts.TTL, time.Hour)
	if opts.SetCost != nil {
		c.setCost = opts.SetCost
	} else {
		c.setCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return c, nil
}

func (c *Cache) Enabled() bool { return c.enabled }

func (c *Cache) Close(ctx context.Context) error {
	if c.provider != nil {
		return c.provider.Close(ctx)
	}
	return nil
}

// Decode returns the area for a full code, from cache when possible. Invalid
// codes fail exactly as olc.Decode does and are never cached.
func (c *Cache) Decode(ctx context.Context, code string) (olc.Area, error) {
	if !c.enabled {
		return olc.Decode(code)
	}
	k := c.areaKey(code)
	if raw, ok, err := c.provider.Get(ctx, k); err == nil && ok {
		payload, err := wire.Decode(raw)
		if err != nil {
			// Self-heal: foreign or corrupt bytes become a miss.
			_ = c.provider.Del(ctx, k)
			c.log.Debug("dropped corrupt cache entry", Fields{"key": k})
		} else if area, err := c.codec.Decode(payload); err != nil {
			_ = c.provider.Del(ctx, k)
			c.log.Debug("dropped undecodable cache entry", Fields{"key": k, "err": err})
		} else {
			return area, nil
		}
	}

	area, err := olc.Decode(code)
	if err != nil {
		return olc.Area{}, err
	}
	c.store(ctx, k, area)
	return area, nil
}

// RecoverNearest expands a short code and warms the decode cache with the
// recovered full code's area.
func (c *Cache) RecoverNearest(ctx context.Context, shortCode string, referenceLatitude, referenceLongitude float64) (string, error) {
	full, err := olc.RecoverNearest(shortCode, referenceLatitude, referenceLongitude)
	if err != nil {
		return "", err
	}
	if c.enabled {
		if _, err := c.Decode(ctx, full); err != nil {
			// The recovered code is full by construction; a decode error
			// here would be a bug, not a cache condition.
			return "", err
		}
	}
	return full, nil
}

// store writes an area back best-effort. Write failures are logged, never
// surfaced: the caller already has the value.
func (c *Cache) store(ctx context.Context, key string, area olc.Area) {
	payload, err := c.codec.Encode(area)
	if err != nil {
		c.log.Warn("area encode failed", Fields{"key": key, "err": err})
		return
	}
	framed := wire.Encode(payload)
	ok, err := c.provider.Set(ctx, key, framed, c.setCost(key, framed), c.ttl)
	if err != nil {
		c.log.Warn("cache write failed", Fields{"key": key, "err": err})
		return
	}
	if !ok {
		c.log.Debug("cache write rejected by provider (pressure)", Fields{"key": key})
	}
}

// areaKey normalizes the code so "8fwc2345+g6" and "8FWC2345+G6" share an
// entry, and isolates by namespace.
func (c *Cache) areaKey(code string) string {
	return "area:" + c.ns + ":" + strings.ToUpper(code)
}
