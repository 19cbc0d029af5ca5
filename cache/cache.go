// Package cache provides the response cache of the public content routes.
// Values are msgpack-encoded, so every backend stores a copy of the value
// and callers can never mutate a cached entry.
package cache

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache is a key-value cache with per-entry lifetimes
type Cache interface {
	// Get decodes the value stored at key into target and reports whether
	// the key was present
	Get(ctx context.Context, key string, target any) (bool, error)
	// Set stores value at key; a ttl of zero keeps the entry until it is
	// deleted
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes key
	Delete(ctx context.Context, key string) error
	// Clear removes every key starting with prefix
	Clear(ctx context.Context, prefix string) error
}

const keySeparator = ":"

// Key joins the passed parts into a cache key
func Key(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// Prefix returns the prefix shared by all keys built with Key from parts
// and further parts
func Prefix(parts ...string) string {
	return Key(parts...) + keySeparator
}

func encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(value); err != nil {
		return nil, errors.Wrap(err, "could not encode cache value")
	}
	return buf.Bytes(), nil
}

func decode(data []byte, target any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(target); err != nil {
		return errors.Wrap(err, "could not decode cache value")
	}
	return nil
}

// Noop is a Cache that stores nothing; it is used when caching is disabled
type Noop struct{}

// Get implements the Cache interface
func (Noop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

// Set implements the Cache interface
func (Noop) Set(context.Context, string, any, time.Duration) error {
	return nil
}

// Delete implements the Cache interface
func (Noop) Delete(context.Context, string) error {
	return nil
}

// Clear implements the Cache interface
func (Noop) Clear(context.Context, string) error {
	return nil
}
