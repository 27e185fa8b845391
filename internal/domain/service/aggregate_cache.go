package service

import (
	"context"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

// AggregateCache is a short-lived cache for the stats read model. A miss
// and a disabled cache look the same to callers: (nil, nil).
type AggregateCache interface {
	Get(ctx context.Context) (*entity.Aggregate, error)
	Set(ctx context.Context, agg *entity.Aggregate) error
	Invalidate(ctx context.Context) error
}
