package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/domain/enrollment"
)

type EnrollmentsStore interface {
	Create(ctx context.Context, req enrollment.CreateEnrollmentRequest) (enrollment.Enrollment, error)
	GetByID(ctx context.Context, id string) (enrollment.Enrollment, error)
	List(ctx context.Context) ([]enrollment.Enrollment, error)
}

type EnrollmentsHandler struct {
	repo EnrollmentsStore
}

func NewEnrollmentsHandler(repo EnrollmentsStore) *EnrollmentsHandler {
	return &EnrollmentsHandler{repo: repo}
}

func (h *EnrollmentsHandler) Create(ctx *gin.Context) {
	var req enrollment.CreateEnrollmentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, enrollment.ErrAlreadyEnrolled) {
			RespondBadRequest(ctx, "already_enrolled", "Already enrolled in this course", nil)
			return
		}

		RespondInternal(ctx, "Could not create enrollment")
		return
	}

	ctx.JSON(http.StatusOK, e)
}

func (h *EnrollmentsHandler) List(ctx *gin.Context) {
	enrollments, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list enrollments")
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

func (h *EnrollmentsHandler) GetByID(ctx *gin.Context) {
	e, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			RespondNotFound(ctx, "Enrollment not found")
			return
		}

		RespondInternal(ctx, "Could not fetch enrollment")
		return
	}

	ctx.JSON(http.StatusOK, e)
}
