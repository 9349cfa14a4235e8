package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonwraymond/styleops/stylesheet"
)

// TestCacheKey_Validation tests key validation rules.
func TestCacheKey_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"empty key", "", ErrInvalidKey},
		{"valid key", "native:0123456789abcdef", nil},
		{"too long", strings.Repeat("x", MaxKeyLength+1), ErrKeyTooLong},
		{"contains newline", "key\nwith\nnewlines", ErrInvalidKey},
		{"contains carriage return", "key\rwith\rreturns", ErrInvalidKey},
		{"whitespace only", "   ", ErrInvalidKey},
		{"max length exactly", strings.Repeat("x", MaxKeyLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateKey(%q) = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

// TestCacheInterface_CompileCheck verifies the Cache interface contract.
func TestCacheInterface_CompileCheck(t *testing.T) {
	var _ Cache = (*mockCache)(nil)
}

type mockCache struct{}

func (m *mockCache) Get(context.Context, string) (stylesheet.Handle, bool) { return nil, false }

func (m *mockCache) Set(context.Context, string, stylesheet.Handle, time.Duration) error {
	return nil
}

func (m *mockCache) Delete(context.Context, string) error { return nil }

func (m *mockCache) Clear(context.Context) error { return nil }

// TestSentinelErrors verifies sentinel errors are distinct and have expected messages.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrNilCache", ErrNilCache, "cache: cache is nil"},
		{"ErrNilCompiler", ErrNilCompiler, "cache: compiler is nil"},
		{"ErrInvalidKey", ErrInvalidKey, "cache: key is invalid"},
		{"ErrKeyTooLong", ErrKeyTooLong, "cache: key exceeds max length"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
			for _, other := range tests[i+1:] {
				if errors.Is(tt.err, other.err) {
					t.Errorf("%s and %s should be distinct", tt.name, other.name)
				}
			}
		})
	}
}
