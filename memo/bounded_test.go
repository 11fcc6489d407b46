package memo

import (
	"errors"
	"math"
	"testing"

	"github.com/goliatone/go-memo/pkg/testsupport"
)

func TestNewBounded_FirstCallComputesOnce(t *testing.T) {
	counter := testsupport.NewCountingFunc(func(n int) (int, error) {
		return n * n, nil
	})

	c, err := NewBounded(counter.Func(), Config{Capacity: 64})
	if err != nil {
		t.Fatalf("NewBounded() failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		result, callErr := c.Call(12)
		if callErr != nil {
			t.Fatalf("Call() failed: %v", callErr)
		}
		if result != 144 {
			t.Errorf("expected 144, got %d", result)
		}
	}

	if counter.Total() != 1 {
		t.Errorf("expected exactly 1 computation, got %d", counter.Total())
	}
}

func TestNewBounded_InvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "zero capacity", capacity: 0},
		{name: "negative capacity", capacity: -5},
		{name: "overflowing capacity", capacity: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBounded(func(s string) (string, error) {
				return s, nil
			}, Config{Capacity: tt.capacity})

			var capErr *CapacityError
			if !errors.As(err, &capErr) {
				t.Fatalf("expected *CapacityError, got %v", err)
			}
		})
	}
}

func TestNewBounded_NilFunc(t *testing.T) {
	_, err := NewBounded[int, int](nil, DefaultConfig())
	if !errors.Is(err, ErrNilFunc) {
		t.Errorf("expected ErrNilFunc, got %v", err)
	}
}

func TestNewBoundedWithHasher_NilHasher(t *testing.T) {
	_, err := NewBoundedWithHasher(func(n int) (int, error) {
		return n, nil
	}, DefaultConfig(), nil)
	if !errors.Is(err, ErrNilHasher) {
		t.Errorf("expected ErrNilHasher, got %v", err)
	}
}

func TestBoundedCache_LenNeverExceedsCapacity(t *testing.T) {
	c, err := NewBounded(func(n int) (int, error) {
		return n + 1, nil
	}, Config{Capacity: 17})
	if err != nil {
		t.Fatalf("NewBounded() failed: %v", err)
	}

	for i := 0; i < 1000; i++ {
		if _, callErr := c.Call(i); callErr != nil {
			t.Fatalf("Call(%d) failed: %v", i, callErr)
		}
		if c.Len() > c.Capacity() {
			t.Fatalf("Len %d exceeds Capacity %d", c.Len(), c.Capacity())
		}
	}

	if c.Capacity() != 17 {
		t.Errorf("expected capacity 17, got %d", c.Capacity())
	}
}

func TestBoundedCache_ResultsStayPairedWithKeys(t *testing.T) {
	// Heavy collision churn must never return a result computed for a
	// different key.
	c, err := NewBounded(func(n int) (int, error) {
		return n * 3, nil
	}, Config{Capacity: 5})
	if err != nil {
		t.Fatalf("NewBounded() failed: %v", err)
	}

	for i := 0; i < 5000; i++ {
		key := i % 97
		result, callErr := c.Call(key)
		if callErr != nil {
			t.Fatalf("Call(%d) failed: %v", key, callErr)
		}
		if result != key*3 {
			t.Fatalf("key %d returned result %d computed for a different key", key, result)
		}
	}
}

func TestBoundedCache_ErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	shouldFail := true

	counter := testsupport.NewCountingFunc(func(s string) (string, error) {
		if shouldFail {
			return "", boom
		}
		return "ok", nil
	})

	c, err := NewBounded(counter.Func(), Config{Capacity: 8})
	if err != nil {
		t.Fatalf("NewBounded() failed: %v", err)
	}

	if _, callErr := c.Call("k"); !errors.Is(callErr, boom) {
		t.Fatalf("expected boom, got %v", callErr)
	}
	if c.Len() != 0 {
		t.Errorf("expected no cached entries after failure, got %d", c.Len())
	}

	shouldFail = false
	if _, callErr := c.Call("k"); callErr != nil {
		t.Fatalf("Call() failed after recovery: %v", callErr)
	}
	if counter.Calls("k") != 2 {
		t.Errorf("expected failure then retry, function ran %d times", counter.Calls("k"))
	}
}
