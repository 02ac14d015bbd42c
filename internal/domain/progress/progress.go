package progress

import (
	"errors"
	"time"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusOnHold     Status = "ON_HOLD"
)

type Progress struct {
	ID             string    `json:"progress_id"`
	LearnerID      string    `json:"learner_id"`
	CourseID       string    `json:"course_id"`
	CompletionRate float64   `json:"completion_rate"`
	LastAccessed   time.Time `json:"last_accessed"`
	Status         Status    `json:"status"`
}

var ErrNotFound = errors.New("progress not found")

type CreateProgressRequest struct {
	LearnerID      string  `json:"learner_id" binding:"required"`
	CourseID       string  `json:"course_id" binding:"required"`
	CompletionRate float64 `json:"completion_rate" binding:"omitempty,min=0,max=1"`
	Status         Status  `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED ON_HOLD"`
}
