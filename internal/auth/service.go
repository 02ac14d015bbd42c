package auth

import (
	"context"
	"errors"

	"github.com/lernexhq/lernex/internal/domain/learner"
	"github.com/lernexhq/lernex/internal/security"
)

// ErrInvalidCredentials is the single failure for login: unknown email
// and wrong password both collapse into it (enumeration resistance).
var ErrInvalidCredentials = errors.New("incorrect email or password")

// LearnerStore is the credential-store surface the service needs.
// Create must serialize its duplicate-email check with the insert.
type LearnerStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (learner.Learner, error)
	GetByEmail(ctx context.Context, email string) (learner.Learner, error)
	GetByID(ctx context.Context, id string) (learner.Learner, error)
}

// Service verifies login attempts against the credential store and mints
// access tokens on success.
type Service struct {
	store LearnerStore
	jwt   *Manager
}

func NewService(store LearnerStore, jwtManager *Manager) *Service {
	return &Service{store: store, jwt: jwtManager}
}

// Register hashes the password and inserts a new learner. The hash is
// computed before the store is touched so the expensive bcrypt work
// never runs under the store lock. Duplicate email surfaces as
// learner.ErrEmailAlreadyUsed.
func (s *Service) Register(ctx context.Context, name, email, password string) (learner.Learner, error) {
	hash, err := security.HashPassword(password)

	if err != nil {
		return learner.Learner{}, err
	}

	return s.store.Create(ctx, name, email, hash)
}

// Authenticate resolves the learner by email and verifies the password.
// Any failure yields a single false return; the caller decides how to
// phrase it.
func (s *Service) Authenticate(ctx context.Context, email, password string) (learner.Learner, bool) {
	l, err := s.store.GetByEmail(ctx, email)

	if err != nil {
		return learner.Learner{}, false
	}

	if err := security.CheckPassword(l.PasswordHash, password); err != nil {
		return learner.Learner{}, false
	}

	return l, true
}

// Login authenticates and, on success, mints a token carrying the
// learner id and an email snapshot.
func (s *Service) Login(ctx context.Context, email, password string) (string, learner.Learner, error) {
	l, ok := s.Authenticate(ctx, email, password)

	if !ok {
		return "", learner.Learner{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(l.ID, l.Email)

	if err != nil {
		return "", learner.Learner{}, err
	}

	return token, l, nil
}
