package jobs

type JobType string

const (
	JobSendWelcome                JobType = "send_welcome"
	JobSendEnrollmentConfirmation JobType = "send_enrollment_confirmation"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobSendWelcome, JobSendEnrollmentConfirmation:
		return true
	default:
		return false
	}
}
