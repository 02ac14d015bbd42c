package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/feedback"
)

type FeedbackRepo struct {
	mu    sync.RWMutex
	items map[string]feedback.Feedback
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{items: make(map[string]feedback.Feedback)}
}

func (r *FeedbackRepo) Create(ctx context.Context, req feedback.CreateFeedbackRequest) (feedback.Feedback, error) {
	rating := req.Rating

	if rating.Value == 0 {
		rating.Value = 5
	}
	if rating.CommentCategory == "" {
		rating.CommentCategory = "general"
	}

	f := feedback.Feedback{
		ID:        uuid.NewString(),
		LearnerID: req.LearnerID,
		CourseID:  req.CourseID,
		Comment:   req.Comment,
		Rating:    rating,
	}

	r.mu.Lock()
	r.items[f.ID] = f
	r.mu.Unlock()

	return f, nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (feedback.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[id]

	if !ok {
		return feedback.Feedback{}, feedback.ErrNotFound
	}

	return f, nil
}

func (r *FeedbackRepo) List(ctx context.Context) ([]feedback.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feedback.Feedback, 0, len(r.items))

	for _, f := range r.items {
		out = append(out, f)
	}

	return out, nil
}
