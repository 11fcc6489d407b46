package di

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-memo/memo"
	"github.com/goliatone/go-memo/pkg/testsupport"
)

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	if container.Service() == nil {
		t.Error("expected service to be initialized")
	}
	if container.KeySerializer() == nil {
		t.Error("expected key serializer to be initialized")
	}
	if container.Config().Capacity != memo.DefaultServiceConfig().Capacity {
		t.Errorf("expected default capacity, got %d", container.Config().Capacity)
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	_, err := NewContainer(memo.ServiceConfig{})
	if err == nil {
		t.Fatal("expected error for zero config, got nil")
	}
}

func TestContainer_Singletons(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	if container.Service() != container.Service() {
		t.Error("expected Service to return the same instance")
	}
	if container.KeySerializer() != container.KeySerializer() {
		t.Error("expected KeySerializer to return the same instance")
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := NewContainerWithDefaults(WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if !strings.Contains(entries[0].Message, "container initialized") {
		t.Errorf("unexpected log message: %q", entries[0].Message)
	}
}

func TestWithLogger_NilKeepsNop(t *testing.T) {
	if _, err := NewContainerWithDefaults(WithLogger(nil)); err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}
}

func TestNewSharedFunc_MemoizesThroughContainer(t *testing.T) {
	cfg := memo.ServiceConfig{
		Capacity:           100,
		NumShards:          4,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}

	counted := testsupport.NewCountingFunc(func(key int) (int, error) {
		return key * 2, nil
	})

	doubled, err := NewSharedFunc(container, "double", counted.Func())
	if err != nil {
		t.Fatalf("NewSharedFunc failed: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		result, err := doubled.Call(ctx, 21)
		if err != nil {
			t.Fatalf("Call failed: %v", err)
		}
		if result != 42 {
			t.Errorf("expected 42, got %d", result)
		}
	}

	if counted.Total() != 1 {
		t.Errorf("expected 1 computation, got %d", counted.Total())
	}
}

func TestNewSharedFunc_ScopesSeparateFunctions(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	double, err := NewSharedFunc(container, "double", func(n int) (int, error) {
		return n * 2, nil
	})
	if err != nil {
		t.Fatalf("NewSharedFunc failed: %v", err)
	}

	triple, err := NewSharedFunc(container, "triple", func(n int) (int, error) {
		return n * 3, nil
	})
	if err != nil {
		t.Fatalf("NewSharedFunc failed: %v", err)
	}

	ctx := context.Background()
	d, err := double.Call(ctx, 5)
	if err != nil {
		t.Fatalf("double.Call failed: %v", err)
	}
	tr, err := triple.Call(ctx, 5)
	if err != nil {
		t.Fatalf("triple.Call failed: %v", err)
	}

	if d != 10 || tr != 15 {
		t.Errorf("expected 10 and 15, got %d and %d", d, tr)
	}
}

func TestNewSharedFunc_NilFunc(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	_, err = NewSharedFunc[int, int](container, "broken", nil)
	if !errors.Is(err, memo.ErrNilFunc) {
		t.Errorf("expected ErrNilFunc, got %v", err)
	}
}
