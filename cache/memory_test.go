package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type nativeStyle struct {
	id    int
	rules string
}

func TestMemoryCache_GetSetDelete(t *testing.T) {
	cache := NewMemoryCache(DefaultPolicy())
	ctx := context.Background()

	if val, ok := cache.Get(ctx, "nonexistent"); ok || val != nil {
		t.Error("Get on empty cache should return (nil, false)")
	}

	key := "native:00000000000000aa"
	handle := &nativeStyle{id: 1, rules: "color:red;"}
	if err := cache.Set(ctx, key, handle, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := cache.Get(ctx, key)
	if !ok {
		t.Fatal("Get after Set should return ok=true")
	}
	if got != handle {
		t.Errorf("Get returned %v, want the stored handle", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := cache.Get(ctx, key); ok {
		t.Error("Get after Delete should return ok=false")
	}

	if err := cache.Delete(ctx, "nonexistent"); err != nil {
		t.Errorf("Delete on non-existent key should not error, got: %v", err)
	}
}

func TestMemoryCache_SetNoOps(t *testing.T) {
	cache := NewMemoryCache(DefaultPolicy())
	ctx := context.Background()

	tests := []struct {
		name   string
		handle any
		ttl    time.Duration
	}{
		{"zero ttl", "handle", 0},
		{"negative ttl", "handle", -time.Second},
		{"nil handle", nil, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, "key", tt.handle, tt.ttl); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if _, ok := cache.Get(ctx, "key"); ok {
				t.Error("nothing should have been stored")
			}
		})
	}
}

func TestMemoryCache_RejectsInvalidKey(t *testing.T) {
	cache := NewMemoryCache(DefaultPolicy())
	if err := cache.Set(context.Background(), "bad\nkey", "handle", time.Minute); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(Policy{DefaultTTL: time.Minute})
	ctx := context.Background()

	if err := cache.Set(ctx, "short", "handle", 20*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := cache.Get(ctx, "short"); !ok {
		t.Fatal("handle should be present before expiry")
	}

	time.Sleep(50 * time.Millisecond)

	if _, ok := cache.Get(ctx, "short"); ok {
		t.Error("handle should be gone after expiry")
	}
}

func TestMemoryCache_MaxTTLClamp(t *testing.T) {
	cache := NewMemoryCache(Policy{DefaultTTL: time.Millisecond, MaxTTL: 20 * time.Millisecond})
	ctx := context.Background()

	if err := cache.Set(ctx, "clamped", "handle", time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, ok := cache.Get(ctx, "clamped"); ok {
		t.Error("TTL should have been clamped to MaxTTL")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache(DefaultPolicy())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("key-%d", i), i+1, time.Minute)
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache(DefaultPolicy())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			_ = cache.Set(ctx, key, n, time.Minute)
			_, _ = cache.Get(ctx, key)
			if n%7 == 0 {
				_ = cache.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
