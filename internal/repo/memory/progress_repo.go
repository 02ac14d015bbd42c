package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/progress"
)

type ProgressRepo struct {
	mu    sync.RWMutex
	items map[string]progress.Progress
}

func NewProgressRepo() *ProgressRepo {
	return &ProgressRepo{items: make(map[string]progress.Progress)}
}

func (r *ProgressRepo) Create(ctx context.Context, req progress.CreateProgressRequest) (progress.Progress, error) {
	status := req.Status

	if status == "" {
		status = progress.StatusInProgress
	}

	p := progress.Progress{
		ID:             uuid.NewString(),
		LearnerID:      req.LearnerID,
		CourseID:       req.CourseID,
		CompletionRate: req.CompletionRate,
		LastAccessed:   time.Now().UTC(),
		Status:         status,
	}

	r.mu.Lock()
	r.items[p.ID] = p
	r.mu.Unlock()

	return p, nil
}

func (r *ProgressRepo) GetByID(ctx context.Context, id string) (progress.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]

	if !ok {
		return progress.Progress{}, progress.ErrNotFound
	}

	return p, nil
}

func (r *ProgressRepo) List(ctx context.Context) ([]progress.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]progress.Progress, 0, len(r.items))

	for _, p := range r.items {
		out = append(out, p)
	}

	return out, nil
}
