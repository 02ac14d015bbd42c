package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/domain/recommendation"
)

type RecommendationsStore interface {
	Create(ctx context.Context, req recommendation.CreateRecommendationRequest) (recommendation.Recommendation, error)
	GetByID(ctx context.Context, id string) (recommendation.Recommendation, error)
	List(ctx context.Context) ([]recommendation.Recommendation, error)
}

type RecommendationsHandler struct {
	repo RecommendationsStore
}

func NewRecommendationsHandler(repo RecommendationsStore) *RecommendationsHandler {
	return &RecommendationsHandler{repo: repo}
}

func (h *RecommendationsHandler) Create(ctx *gin.Context) {
	var req recommendation.CreateRecommendationRequest

	if !BindJSON(ctx, &req) {
		return
	}

	rec, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create recommendation")
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

func (h *RecommendationsHandler) List(ctx *gin.Context) {
	items, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list recommendations")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *RecommendationsHandler) GetByID(ctx *gin.Context) {
	rec, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, recommendation.ErrNotFound) {
			RespondNotFound(ctx, "Recommendation not found")
			return
		}

		RespondInternal(ctx, "Could not fetch recommendation")
		return
	}

	ctx.JSON(http.StatusOK, rec)
}
