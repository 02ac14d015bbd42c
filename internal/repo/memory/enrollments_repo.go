package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/enrollment"
)

type EnrollmentsRepo struct {
	mu    sync.RWMutex
	items map[string]enrollment.Enrollment
	// learner_id -> course_id set, to keep (learner, course) unique
	byLearner map[string]map[string]string
}

func NewEnrollmentsRepo() *EnrollmentsRepo {
	return &EnrollmentsRepo{
		items:     make(map[string]enrollment.Enrollment),
		byLearner: make(map[string]map[string]string),
	}
}

func (r *EnrollmentsRepo) Create(ctx context.Context, req enrollment.CreateEnrollmentRequest) (enrollment.Enrollment, error) {
	status := req.Status

	if status == "" {
		status = enrollment.StatusActive
	}

	e := enrollment.Enrollment{
		ID:             uuid.NewString(),
		LearnerID:      req.LearnerID,
		CourseID:       req.CourseID,
		EnrollmentDate: time.Now().UTC(),
		Status:         status,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	courses, ok := r.byLearner[e.LearnerID]

	if !ok {
		courses = make(map[string]string)
		r.byLearner[e.LearnerID] = courses
	}

	if _, enrolled := courses[e.CourseID]; enrolled {
		return enrollment.Enrollment{}, enrollment.ErrAlreadyEnrolled
	}

	r.items[e.ID] = e
	courses[e.CourseID] = e.ID

	return e, nil
}

func (r *EnrollmentsRepo) GetByID(ctx context.Context, id string) (enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]

	if !ok {
		return enrollment.Enrollment{}, enrollment.ErrNotFound
	}

	return e, nil
}

func (r *EnrollmentsRepo) List(ctx context.Context) ([]enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]enrollment.Enrollment, 0, len(r.items))

	for _, e := range r.items {
		out = append(out, e)
	}

	return out, nil
}

func (r *EnrollmentsRepo) ListByLearner(ctx context.Context, learnerID string) ([]enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]enrollment.Enrollment, 0)

	for _, id := range r.byLearner[learnerID] {
		out = append(out, r.items[id])
	}

	return out, nil
}
