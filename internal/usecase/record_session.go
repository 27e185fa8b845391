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

// RecordSessionUseCase persists one finished play-through.
type RecordSessionUseCase struct {
	repo  repository.SessionRepository
	cache service.AggregateCache
}

func NewRecordSessionUseCase(repo repository.SessionRepository, cache service.AggregateCache) *RecordSessionUseCase {
	return &RecordSessionUseCase{repo: repo, cache: cache}
}

// Execute validates and stores the record. The legacy write and the
// cache invalidation are best effort: their failures are logged and the
// primary write still counts as success.
func (u *RecordSessionUseCase) Execute(ctx context.Context, record *entity.SessionRecord) error {
	if u.repo == nil {
		return entity.ErrStoreNotConfigured
	}
	if err := record.Validate(); err != nil {
		return err
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if err := u.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("create session record: %w", err)
	}

	if err := u.repo.CreateLegacy(ctx, record); err != nil {
		slog.Warn("legacy session write failed",
			slog.String("sessionId", record.SessionID),
			slog.Any("error", err))
	}

	if err := u.cache.Invalidate(ctx); err != nil {
		slog.Warn("stats cache invalidation failed", slog.Any("error", err))
	}

	slog.Info("session recorded",
		slog.String("sessionId", record.SessionID),
		slog.String("pmParty", record.PMParty),
		slog.Int("scoreTotal", record.ScoreTotal),
		slog.String("grade", record.Grade))
	return nil
}
