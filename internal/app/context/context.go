// Package appctx is the per-request entity cache the graph facade resolves
// nested fields through. A recipe or ingredient named several times in one
// query is read from the store once:
//
//	rc := appctx.New(ctx)
//	r, err := appctx.GetOrFetch(rc, appctx.Key{Kind: "recipe", ID: 3}, fetchRecipe)
//	rc.Invalidate(appctx.Key{Kind: "recipe", ID: 3})
package appctx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch means one Key was read with two different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// Key names one cached entity.
type Key struct {
	Kind string
	ID   int64
}

func (k Key) String() string {
	return k.Kind + ":" + strconv.FormatInt(k.ID, 10)
}

// RequestContext carries the cache for one request. It is safe for
// concurrent resolvers.
type RequestContext struct {
	context.Context

	group singleflight.Group

	mu      sync.Mutex
	entries map[Key]entry
}

type entry struct {
	value any
	err   error
}

// New returns an empty cache whose fetches run with ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, entries: make(map[Key]entry)}
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the cached value for key or fetches it. Concurrent
// misses on one key share a single fetch. Results and errors are both
// cached, except context errors, which say nothing about the entity.
func GetOrFetch[T any](rc *RequestContext, key Key, fetch func(context.Context) (T, error)) (T, error) {
	if e, ok := rc.lookup(key); ok {
		return typed[T](key, e)
	}

	v, err, _ := rc.group.Do(key.String(), func() (any, error) {
		if e, ok := rc.lookup(key); ok {
			return e.value, e.err
		}

		val, err := fetch(rc.Context)
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			rc.mu.Lock()
			rc.entries[key] = entry{value: val, err: err}
			rc.mu.Unlock()
		}
		return val, err
	})
	return typed[T](key, entry{value: v, err: err})
}

func typed[T any](key Key, e entry) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T, requested %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) lookup(key Key) (entry, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	e, ok := rc.entries[key]
	return e, ok
}

// Put caches value under key, replacing any entry, so reads after a write
// in the same request see the written entity.
func (rc *RequestContext) Put(key Key, value any) {
	rc.mu.Lock()
	rc.entries[key] = entry{value: value}
	rc.mu.Unlock()
}

// Invalidate drops keys.
func (rc *RequestContext) Invalidate(keys ...Key) {
	rc.mu.Lock()
	for _, k := range keys {
		delete(rc.entries, k)
	}
	rc.mu.Unlock()
}

// InvalidateKind drops every entry of kind.
func (rc *RequestContext) InvalidateKind(kind string) {
	rc.mu.Lock()
	for k := range rc.entries {
		if k.Kind == kind {
			delete(rc.entries, k)
		}
	}
	rc.mu.Unlock()
}
