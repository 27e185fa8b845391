package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

func TestDisabledCacheWithoutURL(t *testing.T) {
	cache := NewAggregateCache("", time.Minute)
	ctx := context.Background()

	agg, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, agg, "a disabled cache reads as a miss")

	assert.NoError(t, cache.Set(ctx, &entity.Aggregate{TotalGames: 1}))
	assert.NoError(t, cache.Invalidate(ctx))

	agg, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, agg, "writes to a disabled cache go nowhere")
}

func TestDisabledCacheOnBadURL(t *testing.T) {
	cache := NewAggregateCache("not-a-url", time.Minute)

	agg, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, agg)
}
