package jobs

import (
	"encoding/json"
	"fmt"
)

// EncodePayload marshals a typed payload after checking it matches the
// job type, so a mismatched enqueue fails at the producer.
func EncodePayload(t JobType, payload any) ([]byte, error) {
	if !t.IsValid() {
		return nil, ErrInvalidJobType
	}

	switch t {
	case JobSendWelcome:
		if !isPayload[WelcomePayload](payload) {
			return nil, ErrPayloadTypeMismatch
		}

	case JobSendEnrollmentConfirmation:
		if !isPayload[EnrollmentConfirmationPayload](payload) {
			return nil, ErrPayloadTypeMismatch
		}
	}

	b, err := json.Marshal(payload)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJobPayload, err)
	}

	return b, nil
}

// DecodePayload unmarshals job.Payload into the typed payload struct for
// the job's type.
func DecodePayload(j Job) (any, error) {
	if !j.Type.IsValid() {
		return nil, ErrInvalidJobType
	}
	if len(j.Payload) == 0 {
		return nil, ErrInvalidJobPayload
	}

	switch j.Type {
	case JobSendWelcome:
		var p WelcomePayload
		if err := json.Unmarshal(j.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJobPayload, err)
		}
		return p, nil

	case JobSendEnrollmentConfirmation:
		var p EnrollmentConfirmationPayload
		if err := json.Unmarshal(j.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJobPayload, err)
		}
		return p, nil

	default:
		return nil, ErrInvalidJobType
	}
}

func isPayload[P any](payload any) bool {
	if _, ok := payload.(P); ok {
		return true
	}
	_, ok := payload.(*P)
	return ok
}
