package record

import "errors"

// Record is a learner's transcript: which courses were completed, which
// are ongoing, and the enrollments behind them.
type Record struct {
	ID                 string   `json:"record_id"`
	LearnerID          string   `json:"learner_id"`
	CompletedCourseIDs []string `json:"completed_course_ids"`
	OngoingCourseIDs   []string `json:"ongoing_course_ids"`
	EnrollmentIDs      []string `json:"enrollment_ids"`
}

var ErrNotFound = errors.New("record not found")

type CreateRecordRequest struct {
	LearnerID          string   `json:"learner_id" binding:"required"`
	CompletedCourseIDs []string `json:"completed_course_ids"`
	OngoingCourseIDs   []string `json:"ongoing_course_ids"`
	EnrollmentIDs      []string `json:"enrollment_ids"`
}
