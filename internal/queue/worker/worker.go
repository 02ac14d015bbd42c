package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lernexhq/lernex/internal/jobs"
	"github.com/lernexhq/lernex/internal/notifications"
	"github.com/lernexhq/lernex/internal/observability"
	"github.com/lernexhq/lernex/internal/queue/notifyq"
)

// JobQueue is the queue surface the worker consumes. Requeue puts a
// failed job back for a later retry.
type JobQueue interface {
	Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error)
	Enqueue(ctx context.Context, j jobs.Job) error
}

type Config struct {
	WorkerID string
	// How long each Dequeue blocks waiting for work.
	PollWait time.Duration
	// Metrics is optional; nil disables job outcome counters.
	Metrics *observability.Prom
}

type Worker struct {
	cfg      Config
	queue    JobQueue
	notifier notifications.Notifier
	log      *slog.Logger
}

func New(cfg Config, queue JobQueue, notifier notifications.Notifier, log *slog.Logger) *Worker {
	if cfg.PollWait <= 0 {
		cfg.PollWait = 2 * time.Second
	}

	return &Worker{
		cfg:      cfg,
		queue:    queue,
		notifier: notifier,
		log:      log,
	}
}

// Run consumes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker received shutdown signal", "worker_id", w.cfg.WorkerID)
			return nil
		default:
		}

		processed, err := w.ProcessOne(ctx)

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.log.Error("dequeue failed", "err", err)
			// queue likely unreachable; back off before retrying
			select {
			case <-time.After(ExponentialBackoff(0)):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		_ = processed
	}
}

// ProcessOne waits for a single job and executes it. Returns false when
// the wait window elapsed with no work.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	j, err := w.queue.Dequeue(ctx, w.cfg.PollWait)

	if err != nil {
		if errors.Is(err, notifyq.ErrEmpty) {
			return false, nil
		}
		return false, err
	}

	if err := w.execute(ctx, j); err != nil {
		w.handleFailure(ctx, j, err)
		return true, nil
	}

	w.countResult(j.Type, "done")
	w.log.Info("job done", "job_id", j.ID, "job_type", string(j.Type), "attempts", j.Attempts)

	return true, nil
}

func (w *Worker) execute(ctx context.Context, j jobs.Job) error {
	payload, err := jobs.DecodePayload(j)

	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case jobs.WelcomePayload:
		return w.notifier.SendWelcome(ctx, notifications.SendWelcomeInput{
			LearnerID: p.LearnerID,
			Email:     p.Email,
			Name:      p.Name,
		})

	case jobs.EnrollmentConfirmationPayload:
		return w.notifier.SendEnrollmentConfirmation(ctx, notifications.SendEnrollmentConfirmationInput{
			EnrollmentID: p.EnrollmentID,
			CourseID:     p.CourseID,
			CourseTitle:  p.CourseTitle,
			Email:        p.Email,
			Name:         p.Name,
		})

	default:
		return jobs.ErrInvalidJobType
	}
}

func (w *Worker) handleFailure(ctx context.Context, j jobs.Job, cause error) {
	j.Attempts++

	if j.Attempts >= j.MaxTries {
		w.countResult(j.Type, "failed")
		w.log.Error("job failed permanently",
			"job_id", j.ID,
			"job_type", string(j.Type),
			"attempts", j.Attempts,
			"err", cause,
		)
		return
	}

	delay := ExponentialBackoff(j.Attempts - 1)

	w.countResult(j.Type, "retry")
	w.log.Warn("job failed, will retry",
		"job_id", j.ID,
		"job_type", string(j.Type),
		"attempts", j.Attempts,
		"retry_in", delay.String(),
		"err", cause,
	)

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return
	}

	if err := w.queue.Enqueue(ctx, j); err != nil {
		w.log.Error("requeue failed", "job_id", j.ID, "err", err)
	}
}

func (w *Worker) countResult(t jobs.JobType, result string) {
	if w.cfg.Metrics != nil {
		w.cfg.Metrics.JobResults.WithLabelValues(string(t), result).Inc()
	}
}
