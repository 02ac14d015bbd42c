package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/learner"
)

// LearnersRepo is the in-memory credential store. The write lock covers
// the whole duplicate-email check plus insert, so two concurrent
// registrations with the same email can never both pass the check.
type LearnersRepo struct {
	mu      sync.RWMutex
	items   map[string]learner.Learner
	byEmail map[string]string
}

func NewLearnersRepo() *LearnersRepo {
	return &LearnersRepo{
		items:   make(map[string]learner.Learner),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new learner. Email uniqueness is exact-match and
// enforced inside the critical section. The password hash is expected to
// be precomputed; no hashing happens under the lock.
func (r *LearnersRepo) Create(ctx context.Context, name, email, passwordHash string) (learner.Learner, error) {
	l := learner.Learner{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		JoinDate:     time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return learner.Learner{}, learner.ErrEmailAlreadyUsed
	}

	r.items[l.ID] = l
	r.byEmail[email] = l.ID

	return l, nil
}

func (r *LearnersRepo) GetByID(ctx context.Context, id string) (learner.Learner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]

	if !ok {
		return learner.Learner{}, learner.ErrNotFound
	}

	return l, nil
}

func (r *LearnersRepo) GetByEmail(ctx context.Context, email string) (learner.Learner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]

	if !ok {
		return learner.Learner{}, learner.ErrNotFound
	}

	return r.items[id], nil
}

func (r *LearnersRepo) List(ctx context.Context) ([]learner.Learner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]learner.Learner, 0, len(r.items))

	for _, l := range r.items {
		out = append(out, l)
	}

	return out, nil
}
