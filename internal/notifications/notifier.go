package notifications

import "context"

type SendWelcomeInput struct {
	LearnerID string
	Email     string
	Name      string
}

type SendEnrollmentConfirmationInput struct {
	EnrollmentID string
	CourseID     string
	CourseTitle  string
	Email        string
	Name         string
}

type Notifier interface {
	SendWelcome(ctx context.Context, input SendWelcomeInput) error
	SendEnrollmentConfirmation(ctx context.Context, input SendEnrollmentConfirmationInput) error
}
