package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonwraymond/styleops/stylesheet"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilCache    = errors.New("cache: cache is nil")
	ErrNilCompiler = errors.New("cache: compiler is nil")
	ErrInvalidKey  = errors.New("cache: key is invalid")
	ErrKeyTooLong  = errors.New("cache: key exceeds max length")
)

// Cache stores compiled native style handles by key.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Get never errors; it returns (nil, false) on miss.
type Cache interface {
	// Get retrieves a cached handle. Returns (nil, false) on miss.
	Get(ctx context.Context, key string) (stylesheet.Handle, bool)

	// Set stores a handle with the given TTL. TTL=0 means no caching.
	Set(ctx context.Context, key string, handle stylesheet.Handle, ttl time.Duration) error

	// Delete removes a cached handle. Idempotent - no error on miss.
	Delete(ctx context.Context, key string) error

	// Clear removes every handle.
	Clear(ctx context.Context) error
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
