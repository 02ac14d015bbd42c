package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier is the stand-in delivery provider: it logs instead of
// sending. Swap for a real mail provider behind the same interface.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendWelcome(ctx context.Context, in SendWelcomeInput) error {
	n.log.InfoContext(ctx, "notification.welcome",
		"email", in.Email,
		"name", in.Name,
		"learner_id", in.LearnerID,
	)
	return nil
}

func (n *LogNotifier) SendEnrollmentConfirmation(ctx context.Context, in SendEnrollmentConfirmationInput) error {
	n.log.InfoContext(ctx, "notification.enrollment_confirmation",
		"email", in.Email,
		"name", in.Name,
		"course_id", in.CourseID,
		"course_title", in.CourseTitle,
		"enrollment_id", in.EnrollmentID,
	)
	return nil
}
