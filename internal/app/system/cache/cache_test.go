package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/babyfiction/storehub/internal/app/system/cache"
)

func TestNilClientIsAlwaysMiss(t *testing.T) {
	var c *cache.Client
	ctx := context.Background()

	if got := c.Get(ctx, "key"); got != nil {
		t.Errorf("Get on nil client: got %v, want nil", got)
	}
	// Writers must be no-ops, not panics.
	c.Set(ctx, "key", []byte("value"), time.Minute)
	c.Delete(ctx, "key")
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}
}

func TestUnreachableRedisDegradesToMiss(t *testing.T) {
	// Nothing listens here; every operation must fail soft.
	c := cache.New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.Set(ctx, "key", []byte("value"), time.Minute)
	if got := c.Get(ctx, "key"); got != nil {
		t.Errorf("Get against unreachable redis: got %v, want nil", got)
	}
}
