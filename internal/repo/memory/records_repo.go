package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/record"
)

type RecordsRepo struct {
	mu    sync.RWMutex
	items map[string]record.Record
}

func NewRecordsRepo() *RecordsRepo {
	return &RecordsRepo{items: make(map[string]record.Record)}
}

func (r *RecordsRepo) Create(ctx context.Context, req record.CreateRecordRequest) (record.Record, error) {
	rec := record.Record{
		ID:                 uuid.NewString(),
		LearnerID:          req.LearnerID,
		CompletedCourseIDs: emptyIfNil(req.CompletedCourseIDs),
		OngoingCourseIDs:   emptyIfNil(req.OngoingCourseIDs),
		EnrollmentIDs:      emptyIfNil(req.EnrollmentIDs),
	}

	r.mu.Lock()
	r.items[rec.ID] = rec
	r.mu.Unlock()

	return rec, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (record.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]

	if !ok {
		return record.Record{}, record.ErrNotFound
	}

	return rec, nil
}

func (r *RecordsRepo) List(ctx context.Context) ([]record.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]record.Record, 0, len(r.items))

	for _, rec := range r.items {
		out = append(out, rec)
	}

	return out, nil
}

// keeps list fields as [] instead of null in JSON responses
func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
