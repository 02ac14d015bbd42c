package feedback

import "errors"

type Rating struct {
	Value           int    `json:"value" binding:"omitempty,min=1,max=5"`
	CommentCategory string `json:"comment_category" binding:"omitempty,max=80"`
}

type Feedback struct {
	ID        string `json:"feedback_id"`
	LearnerID string `json:"learner_id"`
	CourseID  string `json:"course_id"`
	Comment   string `json:"comment"`
	Rating    Rating `json:"rating"`
}

var ErrNotFound = errors.New("feedback not found")

type CreateFeedbackRequest struct {
	LearnerID string `json:"learner_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
	Comment   string `json:"comment" binding:"required,max=2000"`
	Rating    Rating `json:"rating" binding:"required"`
}
