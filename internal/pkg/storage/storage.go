// Package storage keeps per-browser session state in a durable key-value
// backend. Keys are plain strings; values are opaque strings.
package storage

import (
	"context"
	"time"
)

// Storage is a minimal key-value store. A ttl of zero means the backend's
// default expiry.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type namespaced struct {
	inner  Storage
	prefix string
}

// Namespace scopes every key of inner under prefix.
func Namespace(inner Storage, prefix string) Storage {
	return &namespaced{inner: inner, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, value, ttl)
}

func (n *namespaced) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = n.prefix + k
	}
	return n.inner.Delete(ctx, prefixed...)
}

// BrowserPrefix is the namespace of one browser session's keys.
func BrowserPrefix(sessionID string) string {
	return "stall:" + sessionID + ":"
}
