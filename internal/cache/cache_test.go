package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsAMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.NoError(t, c.SetJSON(ctx, "product:1", map[string]int{"productId": 1}, time.Minute))

	var dst map[string]int
	assert.False(t, c.GetJSON(ctx, "product:1", &dst))
	assert.NoError(t, c.Delete(ctx, "product:1"))
	assert.Error(t, c.Ping(ctx))
}

func TestSetJSONRejectsUnencodable(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })

	err := c.SetJSON(context.Background(), "k", make(chan int), time.Minute)
	assert.Error(t, err)
}
