package repository

import (
	"context"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

// SessionRepository persists completed play-throughs.
// Collection: game_sessions/{sessionId}; legacy: simulation_results/{id}.
type SessionRepository interface {
	// Create appends one immutable session record. Records are never
	// updated or deleted.
	Create(ctx context.Context, record *entity.SessionRecord) error

	// CreateLegacy writes the trimmed legacy-format record kept for old
	// dashboards. Callers treat its failure as non-fatal.
	CreateLegacy(ctx context.Context, record *entity.SessionRecord) error

	// ListRecent returns up to limit records ordered by creation time
	// descending.
	ListRecent(ctx context.Context, limit int) ([]*entity.SessionRecord, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)
}
