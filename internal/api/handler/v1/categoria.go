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

type CategoriaService interface {
	ListCategorie(ctx context.Context) ([]domain.Categoria, error)
	ListOpzioni(ctx context.Context) ([]domain.Option, error)
	CreateCategoria(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error)
	UpdateCategoria(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error)
	DeleteCategoria(ctx context.Context, id string) error
}

type CategoriaHandler struct {
	svc CategoriaService
}

func NewCategoriaHandler(svc CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		svc: svc,
	}
}

// HandleListCategorie godoc
// @Summary      List categories
// @Tags         categorie
// @Produce      json
// @Success      200  {array}   domain.Categoria
// @Failure      500  {object}  response.Err
// @Router       /categorie [get]
func (h *CategoriaHandler) HandleListCategorie(ctx *gin.Context) {
	categorie, err := h.svc.ListCategorie(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategorie -> h.svc.ListCategorie -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, categorie)
}

// HandleListOpzioniCategorie godoc
// @Summary      List categories as selection options
// @Tags         categorie
// @Produce      json
// @Success      200  {array}   domain.Option
// @Failure      500  {object}  response.Err
// @Router       /categorie/opzioni [get]
func (h *CategoriaHandler) HandleListOpzioniCategorie(ctx *gin.Context) {
	opzioni, err := h.svc.ListOpzioni(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOpzioniCategorie -> h.svc.ListOpzioni -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, opzioni)
}

// HandleCreateCategoria godoc
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveCategoriaRequest  true  "request body"
// @Success      201      {object}  domain.Categoria
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/categorie [post]
// @Security BearerAuth
func (h *CategoriaHandler) HandleCreateCategoria(ctx *gin.Context) {
	var req request.SaveCategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateCategoria(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCategoria -> h.svc.CreateCategoria -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCategoria godoc
// @Summary      Replace a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        categoriaID  path      string                        true  "category id"
// @Param        request      body      request.SaveCategoriaRequest  true  "request body"
// @Success      200          {object}  domain.Categoria
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/categorie/{categoriaID} [put]
// @Security BearerAuth
func (h *CategoriaHandler) HandleUpdateCategoria(ctx *gin.Context) {
	id := ctx.Param("categoriaID")

	var req request.SaveCategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	categoria := req.ToDomain()
	categoria.ID = id

	updated, err := h.svc.UpdateCategoria(ctx.Request.Context(), categoria)
	if err != nil {
		if errors.Is(err, service.ErrCategoriaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("categoria", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategoria -> h.svc.UpdateCategoria -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCategoria godoc
// @Summary      Delete a category
// @Description  Exhibitors referencing the deleted category keep the stale id; it simply stops resolving
// @Tags         admin
// @Produce      json
// @Param        categoriaID  path  string  true  "category id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/categorie/{categoriaID} [delete]
// @Security BearerAuth
func (h *CategoriaHandler) HandleDeleteCategoria(ctx *gin.Context) {
	id := ctx.Param("categoriaID")

	if err := h.svc.DeleteCategoria(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteCategoria -> h.svc.DeleteCategoria -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
