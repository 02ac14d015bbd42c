package enrollment

import (
	"errors"
	"time"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Enrollment struct {
	ID             string    `json:"enrollment_id"`
	LearnerID      string    `json:"learner_id"`
	CourseID       string    `json:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         Status    `json:"status"`
}

var (
	ErrNotFound        = errors.New("enrollment not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

type CreateEnrollmentRequest struct {
	LearnerID string `json:"learner_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
	Status    Status `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}
