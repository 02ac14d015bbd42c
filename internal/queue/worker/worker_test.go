package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lernexhq/lernex/internal/jobs"
	"github.com/lernexhq/lernex/internal/notifications"
	"github.com/lernexhq/lernex/internal/queue/notifyq"
)

type fakeQueue struct {
	ch chan jobs.Job
}

func newFakeQueue(size int) *fakeQueue {
	return &fakeQueue{ch: make(chan jobs.Job, size)}
}

func (q *fakeQueue) Enqueue(_ context.Context, j jobs.Job) error {
	q.ch <- j
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error) {
	select {
	case j := <-q.ch:
		return j, nil
	case <-time.After(wait):
		return jobs.Job{}, notifyq.ErrEmpty
	case <-ctx.Done():
		return jobs.Job{}, ctx.Err()
	}
}

type fakeNotifier struct {
	welcomes    []notifications.SendWelcomeInput
	enrollments []notifications.SendEnrollmentConfirmationInput
	fail        error
}

func (n *fakeNotifier) SendWelcome(_ context.Context, in notifications.SendWelcomeInput) error {
	if n.fail != nil {
		return n.fail
	}
	n.welcomes = append(n.welcomes, in)
	return nil
}

func (n *fakeNotifier) SendEnrollmentConfirmation(_ context.Context, in notifications.SendEnrollmentConfirmationInput) error {
	if n.fail != nil {
		return n.fail
	}
	n.enrollments = append(n.enrollments, in)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustJob(t *testing.T, jt jobs.JobType, payload any) jobs.Job {
	t.Helper()

	b, err := jobs.EncodePayload(jt, payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	j, err := jobs.NewJob(jt, b)
	if err != nil {
		t.Fatalf("new job: %v", err)
	}

	return j
}

func TestProcessOneDeliversWelcome(t *testing.T) {
	q := newFakeQueue(1)
	n := &fakeNotifier{}
	w := New(Config{WorkerID: "w-test", PollWait: 50 * time.Millisecond}, q, n, testLogger())

	j := mustJob(t, jobs.JobSendWelcome, jobs.WelcomePayload{
		LearnerID: "learner-1",
		Email:     "ann@x.com",
		Name:      "Ann",
	})
	if err := q.Enqueue(context.Background(), j); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !processed {
		t.Fatal("expected a job to be processed")
	}

	if len(n.welcomes) != 1 || n.welcomes[0].Email != "ann@x.com" {
		t.Fatalf("welcome not delivered: %+v", n.welcomes)
	}
}

func TestProcessOneEmptyQueue(t *testing.T) {
	q := newFakeQueue(1)
	w := New(Config{PollWait: 10 * time.Millisecond}, q, &fakeNotifier{}, testLogger())

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed {
		t.Fatal("expected no work")
	}
}

func TestProcessOneDropsJobAfterMaxTries(t *testing.T) {
	q := newFakeQueue(2)
	n := &fakeNotifier{fail: errors.New("provider down")}
	w := New(Config{PollWait: 50 * time.Millisecond}, q, n, testLogger())

	j := mustJob(t, jobs.JobSendEnrollmentConfirmation, jobs.EnrollmentConfirmationPayload{
		EnrollmentID: "enr-1",
		CourseID:     "course-001",
		Email:        "ann@x.com",
	})
	j.MaxTries = 1

	if err := q.Enqueue(context.Background(), j); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !processed {
		t.Fatal("expected the job to be consumed")
	}

	// Exhausted jobs must not be requeued.
	select {
	case left := <-q.ch:
		t.Fatalf("job was requeued after max tries: %+v", left)
	default:
	}
}
