package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/recommendation"
)

type RecommendationsRepo struct {
	mu    sync.RWMutex
	items map[string]recommendation.Recommendation
}

func NewRecommendationsRepo() *RecommendationsRepo {
	return &RecommendationsRepo{items: make(map[string]recommendation.Recommendation)}
}

func (r *RecommendationsRepo) Create(ctx context.Context, req recommendation.CreateRecommendationRequest) (recommendation.Recommendation, error) {
	rec := recommendation.Recommendation{
		ID:            uuid.NewString(),
		LearnerID:     req.LearnerID,
		CourseIDs:     emptyIfNil(req.CourseIDs),
		GeneratedDate: time.Now().UTC(),
	}

	r.mu.Lock()
	r.items[rec.ID] = rec
	r.mu.Unlock()

	return rec, nil
}

func (r *RecommendationsRepo) GetByID(ctx context.Context, id string) (recommendation.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]

	if !ok {
		return recommendation.Recommendation{}, recommendation.ErrNotFound
	}

	return rec, nil
}

func (r *RecommendationsRepo) List(ctx context.Context) ([]recommendation.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]recommendation.Recommendation, 0, len(r.items))

	for _, rec := range r.items {
		out = append(out, rec)
	}

	return out, nil
}
