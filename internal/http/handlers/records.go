package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/domain/record"
)

type RecordsStore interface {
	Create(ctx context.Context, req record.CreateRecordRequest) (record.Record, error)
	GetByID(ctx context.Context, id string) (record.Record, error)
	List(ctx context.Context) ([]record.Record, error)
}

type RecordsHandler struct {
	repo RecordsStore
}

func NewRecordsHandler(repo RecordsStore) *RecordsHandler {
	return &RecordsHandler{repo: repo}
}

func (h *RecordsHandler) Create(ctx *gin.Context) {
	var req record.CreateRecordRequest

	if !BindJSON(ctx, &req) {
		return
	}

	rec, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create learning record")
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

func (h *RecordsHandler) List(ctx *gin.Context) {
	items, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list learning records")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *RecordsHandler) GetByID(ctx *gin.Context) {
	rec, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			RespondNotFound(ctx, "Record not found")
			return
		}

		RespondInternal(ctx, "Could not fetch learning record")
		return
	}

	ctx.JSON(http.StatusOK, rec)
}
