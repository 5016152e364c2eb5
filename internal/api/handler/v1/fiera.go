package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sposioggi/espositori-api/internal/api/handler/v1/request"
	"github.com/sposioggi/espositori-api/internal/api/handler/v1/response"
	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/service"
)

type FieraService interface {
	ListFiere(ctx context.Context) ([]domain.Fiera, error)
	ListOpzioni(ctx context.Context) ([]domain.Option, error)
	CreateFiera(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error)
	UpdateFiera(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error)
	DeleteFiera(ctx context.Context, id string) error
}

type FieraHandler struct {
	svc FieraService
}

func NewFieraHandler(svc FieraService) *FieraHandler {
	return &FieraHandler{
		svc: svc,
	}
}

// HandleListFiere godoc
// @Summary      List fairs
// @Tags         fiere
// @Produce      json
// @Success      200  {array}   domain.Fiera
// @Failure      500  {object}  response.Err
// @Router       /fiere [get]
func (h *FieraHandler) HandleListFiere(ctx *gin.Context) {
	fiere, err := h.svc.ListFiere(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFiere -> h.svc.ListFiere -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, fiere)
}

// HandleListOpzioniFiere godoc
// @Summary      List fairs as selection options
// @Description  Projects each fair into the {value, label} shape used by selection widgets
// @Tags         fiere
// @Produce      json
// @Success      200  {array}   domain.Option
// @Failure      500  {object}  response.Err
// @Router       /fiere/opzioni [get]
func (h *FieraHandler) HandleListOpzioniFiere(ctx *gin.Context) {
	opzioni, err := h.svc.ListOpzioni(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOpzioniFiere -> h.svc.ListOpzioni -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, opzioni)
}

// HandleCreateFiera godoc
// @Summary      Create a fair
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveFieraRequest  true  "request body"
// @Success      201      {object}  domain.Fiera
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/fiere [post]
// @Security BearerAuth
func (h *FieraHandler) HandleCreateFiera(ctx *gin.Context) {
	var req request.SaveFieraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateFiera(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateFiera -> h.svc.CreateFiera -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateFiera godoc
// @Summary      Replace a fair
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        fieraID  path      string                    true  "fair id"
// @Param        request  body      request.SaveFieraRequest  true  "request body"
// @Success      200      {object}  domain.Fiera
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/fiere/{fieraID} [put]
// @Security BearerAuth
func (h *FieraHandler) HandleUpdateFiera(ctx *gin.Context) {
	id := ctx.Param("fieraID")

	var req request.SaveFieraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	fiera := req.ToDomain()
	fiera.ID = id

	updated, err := h.svc.UpdateFiera(ctx.Request.Context(), fiera)
	if err != nil {
		if errors.Is(err, service.ErrFieraNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("fiera", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateFiera -> h.svc.UpdateFiera -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteFiera godoc
// @Summary      Delete a fair
// @Description  Exhibitors referencing the deleted fair keep the stale id; it simply stops resolving
// @Tags         admin
// @Produce      json
// @Param        fieraID  path  string  true  "fair id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/fiere/{fieraID} [delete]
// @Security BearerAuth
func (h *FieraHandler) HandleDeleteFiera(ctx *gin.Context) {
	id := ctx.Param("fieraID")

	if err := h.svc.DeleteFiera(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteFiera -> h.svc.DeleteFiera -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
