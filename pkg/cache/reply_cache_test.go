package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReplyCacheNilClientAlwaysMisses(t *testing.T) {
	c := NewReplyCache(nil, time.Minute, zap.NewNop())

	_, ok := c.Get(context.Background(), "some key")
	assert.False(t, ok)

	// Set on a nil client must be a no-op, not a panic.
	c.Set(context.Background(), "some key", "some reply")
	_, ok = c.Get(context.Background(), "some key")
	assert.False(t, ok)
}

func TestReplyCacheIgnoresEmptyKeyAndReply(t *testing.T) {
	c := NewReplyCache(nil, time.Minute, zap.NewNop())
	c.Set(context.Background(), "", "reply")
	c.Set(context.Background(), "key", "")
	_, ok := c.Get(context.Background(), "")
	assert.False(t, ok)
}
