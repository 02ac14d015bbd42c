package jobs

// WelcomePayload is the data needed to greet a freshly registered
// learner. Keep payloads small and ID-based.
type WelcomePayload struct {
	LearnerID string `json:"learnerId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	RequestID string `json:"requestId,omitempty"`
}

// EnrollmentConfirmationPayload confirms a course enrollment.
type EnrollmentConfirmationPayload struct {
	EnrollmentID string `json:"enrollmentId"`
	LearnerID    string `json:"learnerId"`
	CourseID     string `json:"courseId"`
	CourseTitle  string `json:"courseTitle"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	RequestID    string `json:"requestId,omitempty"`
}
