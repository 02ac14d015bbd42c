package learner

import (
	"errors"
	"time"
)

type Learner struct {
	ID           string    `json:"learner_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	JoinDate     time.Time `json:"join_date"`
}

var (
	ErrNotFound         = errors.New("learner not found")
	ErrEmailAlreadyUsed = errors.New("email already registered")
)

type CreateLearnerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
