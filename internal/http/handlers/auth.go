package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/auth"
	"github.com/lernexhq/lernex/internal/domain/learner"
	"github.com/lernexhq/lernex/internal/http/middlewares"
	"github.com/lernexhq/lernex/internal/jobs"
	"github.com/lernexhq/lernex/internal/observability"
)

// NotificationEnqueuer pushes async notification jobs. Optional; a nil
// enqueuer disables notifications without affecting the request.
type NotificationEnqueuer interface {
	Enqueue(ctx context.Context, j jobs.Job) error
}

type AuthHandler struct {
	svc     *auth.Service
	queue   NotificationEnqueuer
	metrics *observability.Prom
}

func NewAuthHandler(svc *auth.Service, queue NotificationEnqueuer, metrics *observability.Prom) *AuthHandler {
	return &AuthHandler{svc: svc, queue: queue, metrics: metrics}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	LearnerID string `json:"learner_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	LearnerID   string `json:"learner_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

type MeResponse struct {
	LearnerID string    `json:"learner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinDate  time.Time `json:"join_date"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	l, err := h.svc.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, learner.ErrEmailAlreadyUsed) {
			h.countAuth("register", "rejected")
			RespondBadRequest(ctx, "email_taken", "Email already registered", nil)
			return
		}

		h.countAuth("register", "error")
		RespondInternal(ctx, "Could not register learner")
		return
	}

	h.countAuth("register", "ok")
	h.enqueueWelcome(ctx, l)

	ctx.JSON(http.StatusOK, RegisterResponse{
		LearnerID: l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Message:   "Learner registered successfully",
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	token, l, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		// Same response for unknown email and wrong password.
		h.countAuth("login", "rejected")
		RespondUnAuthorized(ctx, "invalid_credentials", "Incorrect email or password")
		return
	}

	h.countAuth("login", "ok")

	ctx.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		LearnerID:   l.ID,
		Name:        l.Name,
		Email:       l.Email,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	l, ok := middlewares.LearnerFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Could not validate credentials")
		return
	}

	ctx.JSON(http.StatusOK, MeResponse{
		LearnerID: l.ID,
		Name:      l.Name,
		Email:     l.Email,
		JoinDate:  l.JoinDate,
	})
}

func (h *AuthHandler) enqueueWelcome(ctx *gin.Context, l learner.Learner) {
	if h.queue == nil {
		return
	}

	payload, err := jobs.EncodePayload(jobs.JobSendWelcome, jobs.WelcomePayload{
		LearnerID: l.ID,
		Email:     l.Email,
		Name:      l.Name,
		RequestID: requestIDFrom(ctx),
	})

	if err != nil {
		return
	}

	j, err := jobs.NewJob(jobs.JobSendWelcome, payload)

	if err != nil {
		return
	}

	// best effort; registration already succeeded
	_ = h.queue.Enqueue(ctx.Request.Context(), j)

	if h.metrics != nil {
		h.metrics.JobsEnqueued.WithLabelValues(string(jobs.JobSendWelcome)).Inc()
	}
}

func (h *AuthHandler) countAuth(op, result string) {
	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues(op, result).Inc()
	}
}
