package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernexhq/lernex/internal/domain/learner"
	"github.com/lernexhq/lernex/internal/security"
)

// fakeLearnerStore implements LearnerStore without locking; service tests
// are single-goroutine, the concurrency contract is covered by the memory
// repo tests.
type fakeLearnerStore struct {
	byID    map[string]learner.Learner
	byEmail map[string]string
}

func newFakeLearnerStore() *fakeLearnerStore {
	return &fakeLearnerStore{
		byID:    make(map[string]learner.Learner),
		byEmail: make(map[string]string),
	}
}

func (f *fakeLearnerStore) Create(_ context.Context, name, email, passwordHash string) (learner.Learner, error) {
	if _, ok := f.byEmail[email]; ok {
		return learner.Learner{}, learner.ErrEmailAlreadyUsed
	}

	l := learner.Learner{
		ID:           "learner-" + email,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		JoinDate:     time.Now().UTC(),
	}
	f.byID[l.ID] = l
	f.byEmail[email] = l.ID

	return l, nil
}

func (f *fakeLearnerStore) GetByEmail(_ context.Context, email string) (learner.Learner, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return learner.Learner{}, learner.ErrNotFound
	}
	return f.byID[id], nil
}

func (f *fakeLearnerStore) GetByID(_ context.Context, id string) (learner.Learner, error) {
	l, ok := f.byID[id]
	if !ok {
		return learner.Learner{}, learner.ErrNotFound
	}
	return l, nil
}

func newTestService() (*Service, *fakeLearnerStore) {
	store := newFakeLearnerStore()
	return NewService(store, NewManager("test-secret-key", 30*time.Minute)), store
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store := newTestService()

	l, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored := store.byID[l.ID]
	if stored.PasswordHash == "pw123456" || stored.PasswordHash == "" {
		t.Fatal("stored hash must be a non-empty transform of the password")
	}
	if err := security.CheckPassword(stored.PasswordHash, "pw123456"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Different password, same email: still rejected.
	_, err := svc.Register(ctx, "Another Ann", "ann@x.com", "other-password")
	if !errors.Is(err, learner.ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, l, err := svc.Login(ctx, "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if l.ID != registered.ID {
		t.Errorf("login learner id = %q, want %q", l.ID, registered.ID)
	}

	claims, err := NewManager("test-secret-key", 30*time.Minute).VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != registered.ID {
		t.Errorf("token sub = %q, want %q", claims.Subject, registered.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := svc.Login(ctx, "ann@x.com", "nope")
	_, _, unknownEmail := svc.Login(ctx, "ghost@x.com", "pw123456")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}
