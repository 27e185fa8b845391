package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

func TestGetAggregateDegradedWithoutStore(t *testing.T) {
	uc := NewGetAggregateUseCase(nil, &fakeCache{}, time.Second)

	agg, err := uc.Execute(context.Background())
	require.NoError(t, err, "a missing store degrades the response, not the endpoint")
	assert.Equal(t, 0, agg.TotalGames)
	assert.Equal(t, "DB not connected", agg.Message)
	assert.Empty(t, agg.PMDistribution)
}

func TestGetAggregateCacheHit(t *testing.T) {
	cached := &entity.Aggregate{TotalGames: 42}
	repo := &fakeSessionRepo{listErr: errors.New("must not be called")}
	uc := NewGetAggregateUseCase(repo, &fakeCache{stored: cached}, time.Second)

	agg, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Same(t, cached, agg)
}

func TestGetAggregateCacheMiss(t *testing.T) {
	repo := &fakeSessionRepo{
		listResult: []*entity.SessionRecord{
			{SessionID: "s1", PMParty: "ALPHA", ScoreTotal: 70, Grade: "C"},
			{SessionID: "s2", PMParty: "BETA", ScoreTotal: 90, Grade: "A"},
		},
		countResult: 120,
	}
	cache := &fakeCache{}
	uc := NewGetAggregateUseCase(repo, cache, time.Second)

	agg, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, agg.TotalGames, "headline count is the full store count")
	assert.Equal(t, map[string]int{"ALPHA": 1, "BETA": 1}, agg.PMDistribution)
	assert.Same(t, agg, cache.stored, "fresh aggregate goes back into the cache")
}

func TestGetAggregateCacheReadFailureFallsThrough(t *testing.T) {
	repo := &fakeSessionRepo{countResult: 0}
	uc := NewGetAggregateUseCase(repo, &fakeCache{getErr: errors.New("redis down")}, time.Second)

	agg, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, agg.TotalGames)
}

func TestGetAggregateCountFailureUsesWindowSize(t *testing.T) {
	repo := &fakeSessionRepo{
		listResult: []*entity.SessionRecord{{SessionID: "s1", PMParty: "ALPHA"}},
		countErr:   errors.New("aggregation unavailable"),
	}
	uc := NewGetAggregateUseCase(repo, &fakeCache{}, time.Second)

	agg, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, agg.TotalGames)
}

func TestGetAggregateListFailure(t *testing.T) {
	repo := &fakeSessionRepo{listErr: errors.New("firestore unavailable")}
	uc := NewGetAggregateUseCase(repo, &fakeCache{}, time.Second)

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
