package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/domain/repository"
	"github.com/bejranonda/ThaiGov2569/internal/domain/service"
)

const degradedMessage = "DB not connected"

// GetAggregateUseCase serves the public stats read model, cache first.
type GetAggregateUseCase struct {
	repo        repository.SessionRepository
	cache       service.AggregateCache
	readTimeout time.Duration
}

func NewGetAggregateUseCase(repo repository.SessionRepository, cache service.AggregateCache, readTimeout time.Duration) *GetAggregateUseCase {
	return &GetAggregateUseCase{repo: repo, cache: cache, readTimeout: readTimeout}
}

// Execute returns the aggregated stats. Without a configured store it
// returns an empty aggregate carrying a degraded-mode message instead
// of an error, so the public page still renders.
func (u *GetAggregateUseCase) Execute(ctx context.Context) (*entity.Aggregate, error) {
	if u.repo == nil {
		agg := entity.BuildAggregate(nil)
		agg.Message = degradedMessage
		return agg, nil
	}

	if cached, err := u.cache.Get(ctx); err != nil {
		slog.Warn("stats cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.readTimeout)
	defer cancel()

	records, err := u.repo.ListRecent(ctx, entity.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	agg := entity.BuildAggregate(records)

	// The recent window caps the averages, not the headline count.
	total, err := u.repo.Count(ctx)
	if err != nil {
		slog.Warn("session count failed, using window size", slog.Any("error", err))
	} else {
		agg.TotalGames = total
	}

	if err := u.cache.Set(ctx, agg); err != nil {
		slog.Warn("stats cache write failed", slog.Any("error", err))
	}
	return agg, nil
}
