package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "commplan:projects:complete:abc", Key("projects", "complete", "abc"))
}

func TestNew_EmptyURLDisablesCache(t *testing.T) {
	client, err := New("", zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not-a-redis-url", zap.NewNop())
	assert.Error(t, err)
}

func TestNilClient_OperationsAreNoOps(t *testing.T) {
	var client *Client
	ctx := context.Background()

	assert.False(t, client.Enabled())

	var dest string
	assert.False(t, client.GetJSON(ctx, "k", &dest))

	client.SetJSON(ctx, "k", "v")
	client.Invalidate(ctx, "projects:complete:*")
	require.NoError(t, client.Flush(ctx))

	stats, err := client.Stats(ctx)
	require.NoError(t, err)
	assert.False(t, stats.Enabled)
	assert.Zero(t, stats.Keys)
}
