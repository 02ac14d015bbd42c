package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/auth"
	"github.com/lernexhq/lernex/internal/domain/learner"
)

type LearnerReader interface {
	GetByID(ctx context.Context, id string) (learner.Learner, error)
	List(ctx context.Context) ([]learner.Learner, error)
}

// LearnersHandler exposes the open learner directory. Creation funnels
// through the auth service so the password is hashed and the email stays
// unique, same as /auth/register.
type LearnersHandler struct {
	svc   *auth.Service
	store LearnerReader
}

func NewLearnersHandler(svc *auth.Service, store LearnerReader) *LearnersHandler {
	return &LearnersHandler{svc: svc, store: store}
}

func (h *LearnersHandler) Create(ctx *gin.Context) {
	var req learner.CreateLearnerRequest

	if !BindJSON(ctx, &req) {
		return
	}

	l, err := h.svc.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, learner.ErrEmailAlreadyUsed) {
			RespondBadRequest(ctx, "email_taken", "Email already registered", nil)
			return
		}

		RespondInternal(ctx, "Could not create learner")
		return
	}

	ctx.JSON(http.StatusOK, l)
}

func (h *LearnersHandler) List(ctx *gin.Context) {
	learners, err := h.store.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list learners")
		return
	}

	ctx.JSON(http.StatusOK, learners)
}

func (h *LearnersHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	l, err := h.store.GetByID(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, learner.ErrNotFound) {
			RespondNotFound(ctx, "Learner not found")
			return
		}

		RespondInternal(ctx, "Could not fetch learner")
		return
	}

	ctx.JSON(http.StatusOK, l)
}
