package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/domain/progress"
)

type ProgressStore interface {
	Create(ctx context.Context, req progress.CreateProgressRequest) (progress.Progress, error)
	GetByID(ctx context.Context, id string) (progress.Progress, error)
	List(ctx context.Context) ([]progress.Progress, error)
}

type ProgressHandler struct {
	repo ProgressStore
}

func NewProgressHandler(repo ProgressStore) *ProgressHandler {
	return &ProgressHandler{repo: repo}
}

func (h *ProgressHandler) Create(ctx *gin.Context) {
	var req progress.CreateProgressRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create progress")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *ProgressHandler) List(ctx *gin.Context) {
	items, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list progress")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *ProgressHandler) GetByID(ctx *gin.Context) {
	p, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, progress.ErrNotFound) {
			RespondNotFound(ctx, "Progress not found")
			return
		}

		RespondInternal(ctx, "Could not fetch progress")
		return
	}

	ctx.JSON(http.StatusOK, p)
}
