package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/domain/feedback"
)

type FeedbackStore interface {
	Create(ctx context.Context, req feedback.CreateFeedbackRequest) (feedback.Feedback, error)
	GetByID(ctx context.Context, id string) (feedback.Feedback, error)
	List(ctx context.Context) ([]feedback.Feedback, error)
}

type FeedbackHandler struct {
	repo FeedbackStore
}

func NewFeedbackHandler(repo FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{repo: repo}
}

func (h *FeedbackHandler) Create(ctx *gin.Context) {
	var req feedback.CreateFeedbackRequest

	if !BindJSON(ctx, &req) {
		return
	}

	f, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create feedback")
		return
	}

	ctx.JSON(http.StatusOK, f)
}

func (h *FeedbackHandler) List(ctx *gin.Context) {
	items, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list feedback")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *FeedbackHandler) GetByID(ctx *gin.Context) {
	f, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			RespondNotFound(ctx, "Feedback not found")
			return
		}

		RespondInternal(ctx, "Could not fetch feedback")
		return
	}

	ctx.JSON(http.StatusOK, f)
}
