package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/domain/repository"
)

const (
	sessionCollection = "game_sessions"
	legacyCollection  = "simulation_results"
)

// SessionRepository is the Firestore implementation of the session store.
type SessionRepository struct {
	client *firestore.Client
}

// NewSessionRepository creates a SessionRepository.
func NewSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

// Create appends one immutable session record keyed by its session ID.
func (r *SessionRepository) Create(ctx context.Context, record *entity.SessionRecord) error {
	_, err := r.client.Collection(sessionCollection).Doc(record.SessionID).Set(ctx, record)
	return err
}

// legacyRecord is the trimmed document shape old dashboards read.
type legacyRecord struct {
	Coalition        []string          `firestore:"coalition"`
	Cabinet          map[string]string `firestore:"cabinet"`
	SelectedPolicies []string          `firestore:"selectedPolicies"`
}

// CreateLegacy writes the backward-compat record. Callers swallow the
// error; this method just reports it.
func (r *SessionRepository) CreateLegacy(ctx context.Context, record *entity.SessionRecord) error {
	_, _, err := r.client.Collection(legacyCollection).Add(ctx, legacyRecord{
		Coalition:        record.Coalition,
		Cabinet:          record.Cabinet,
		SelectedPolicies: record.SelectedPolicies,
	})
	return err
}

// ListRecent returns up to limit records, newest first.
func (r *SessionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SessionRecord, error) {
	iter := r.client.Collection(sessionCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	records := make([]*entity.SessionRecord, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var record entity.SessionRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

// Count returns the total number of stored records using the aggregation
// query, so the whole collection is not pulled down.
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	result, err := r.client.Collection(sessionCollection).NewAggregationQuery().
		WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	value, ok := result["total"]
	if !ok {
		return 0, nil
	}
	count, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, nil
	}
	return int(count.GetIntegerValue()), nil
}
