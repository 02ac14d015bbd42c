package recommendation

import (
	"errors"
	"time"
)

type Recommendation struct {
	ID            string    `json:"recommendation_id"`
	LearnerID     string    `json:"learner_id"`
	CourseIDs     []string  `json:"course_ids"`
	GeneratedDate time.Time `json:"generated_date"`
}

var ErrNotFound = errors.New("recommendation not found")

type CreateRecommendationRequest struct {
	LearnerID string   `json:"learner_id" binding:"required"`
	CourseIDs []string `json:"course_ids"`
}
