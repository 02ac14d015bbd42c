package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lernexhq/lernex/internal/domain/learner"
)

func TestLearnersCreateAndGet(t *testing.T) {
	repo := NewLearnersRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ann", "ann@x.com", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated learner id")
	}
	if created.JoinDate.IsZero() {
		t.Fatal("expected join date to be set")
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if byID.Email != "ann@x.com" {
		t.Errorf("email = %q, want %q", byID.Email, "ann@x.com")
	}

	byEmail, err := repo.GetByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("id = %q, want %q", byEmail.ID, created.ID)
	}
}

func TestLearnersEmailIsExactMatch(t *testing.T) {
	repo := NewLearnersRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Ann", "ann@x.com", "hash"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Uniqueness and lookup are case-sensitive exact matches.
	if _, err := repo.Create(ctx, "Ann", "ANN@x.com", "hash"); err != nil {
		t.Fatalf("differently-cased email should be a distinct identity: %v", err)
	}

	if _, err := repo.GetByEmail(ctx, "Ann@x.com"); !errors.Is(err, learner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unseen casing, got %v", err)
	}
}

func TestLearnersDuplicateEmail(t *testing.T) {
	repo := NewLearnersRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Ann", "ann@x.com", "hash-1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := repo.Create(ctx, "Imposter", "ann@x.com", "hash-2")
	if !errors.Is(err, learner.ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestLearnersConcurrentDuplicateRegistration(t *testing.T) {
	repo := NewLearnersRepo()
	ctx := context.Background()

	const attempts = 32

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, "Ann", "ann@x.com", "hash")
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, learner.ErrEmailAlreadyUsed) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Fatalf("exactly one registration must win, got %d", succeeded)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("store must hold exactly one learner, got %d", len(all))
	}
}
