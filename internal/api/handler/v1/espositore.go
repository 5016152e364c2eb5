package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sposioggi/espositori-api/internal/api/handler/v1/request"
	"github.com/sposioggi/espositori-api/internal/api/handler/v1/response"
	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/service"
)

type EspositoreService interface {
	ListEspositori(ctx context.Context, categoriaID string, fiereIDs []string) ([]domain.Espositore, error)
	GetEspositore(ctx context.Context, id string) (domain.Espositore, error)
	CreateEspositore(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error)
	CreateFromLegacy(ctx context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error)
	UpdateEspositore(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error)
	UpdateFromLegacy(ctx context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error)
	DeleteEspositore(ctx context.Context, id string) error
	AddImage(ctx context.Context, id, url string) (domain.Espositore, error)
	RemoveImage(ctx context.Context, id string, index int) (domain.Espositore, error)
}

type ExportService interface {
	Export(ctx context.Context, espositore domain.Espositore) ([]byte, error)
}

type EspositoreHandler struct {
	svc       EspositoreService
	exportSvc ExportService
}

func NewEspositoreHandler(svc EspositoreService, exportSvc ExportService) *EspositoreHandler {
	return &EspositoreHandler{
		svc:       svc,
		exportSvc: exportSvc,
	}
}

// HandleListEspositori godoc
// @Summary      List exhibitors
// @Description  Lists exhibitors, optionally filtered by one category and any number of fairs
// @Tags         espositori
// @Produce      json
// @Param        categoria  query     string  false  "category id"
// @Param        fiere      query     string  false  "comma separated fair ids"
// @Success      200        {array}   domain.Espositore
// @Failure      500        {object}  response.Err
// @Router       /espositori [get]
func (h *EspositoreHandler) HandleListEspositori(ctx *gin.Context) {
	categoriaID := ctx.Query("categoria")
	fiereIDs := splitIDs(ctx.Query("fiere"))

	espositori, err := h.svc.ListEspositori(ctx.Request.Context(), categoriaID, fiereIDs)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEspositori -> h.svc.ListEspositori -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, espositori)
}

// HandleGetEspositore godoc
// @Summary      Get one exhibitor
// @Tags         espositori
// @Produce      json
// @Param        espositoreID  path      string  true  "exhibitor id"
// @Success      200           {object}  domain.Espositore
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /espositori/{espositoreID} [get]
func (h *EspositoreHandler) HandleGetEspositore(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	espositore, err := h.svc.GetEspositore(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEspositoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("espositore", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetEspositore -> h.svc.GetEspositore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, espositore)
}

// HandleExportPDF godoc
// @Summary      Export an exhibitor profile as PDF
// @Description  Builds a single-page PDF with the exhibitor's profile; unreachable images are omitted
// @Tags         espositori
// @Produce      application/pdf
// @Param        espositoreID  path      string  true  "exhibitor id"
// @Success      200           {file}    binary
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /espositori/{espositoreID}/pdf [get]
func (h *EspositoreHandler) HandleExportPDF(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	espositore, err := h.svc.GetEspositore(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEspositoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("espositore", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleExportPDF -> h.svc.GetEspositore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	document, err := h.exportSvc.Export(ctx.Request.Context(), espositore)
	if err != nil {
		err = fmt.Errorf("v1.HandleExportPDF -> h.exportSvc.Export -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := service.ExportFileName(espositore.Name)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", document)
}

// HandleCreateEspositore godoc
// @Summary      Create an exhibitor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveEspositoreRequest  true  "request body"
// @Success      201      {object}  domain.Espositore
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/espositori [post]
// @Security BearerAuth
func (h *EspositoreHandler) HandleCreateEspositore(ctx *gin.Context) {
	var req request.SaveEspositoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var (
		created domain.Espositore
		err     error
	)
	if req.IsLegacy() {
		created, err = h.svc.CreateFromLegacy(ctx.Request.Context(), req.ToLegacy())
	} else {
		created, err = h.svc.CreateEspositore(ctx.Request.Context(), req.ToDomain())
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEspositore -> h.svc.CreateEspositore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEspositore godoc
// @Summary      Replace an exhibitor
// @Description  Full-record replace by id, the editor always submits the whole form; the single-category legacy schema is folded in like on create
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        espositoreID  path      string                         true  "exhibitor id"
// @Param        request       body      request.SaveEspositoreRequest  true  "request body"
// @Success      200           {object}  domain.Espositore
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /admin/espositori/{espositoreID} [put]
// @Security BearerAuth
func (h *EspositoreHandler) HandleUpdateEspositore(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	var req request.SaveEspositoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var (
		updated domain.Espositore
		err     error
	)
	if req.IsLegacy() {
		legacy := req.ToLegacy()
		legacy.ID = id
		updated, err = h.svc.UpdateFromLegacy(ctx.Request.Context(), legacy)
	} else {
		espositore := req.ToDomain()
		espositore.ID = id
		updated, err = h.svc.UpdateEspositore(ctx.Request.Context(), espositore)
	}
	if err != nil {
		if errors.Is(err, service.ErrEspositoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("espositore", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEspositore -> h.svc.UpdateEspositore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEspositore godoc
// @Summary      Delete an exhibitor
// @Tags         admin
// @Produce      json
// @Param        espositoreID  path  string  true  "exhibitor id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/espositori/{espositoreID} [delete]
// @Security BearerAuth
func (h *EspositoreHandler) HandleDeleteEspositore(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	if err := h.svc.DeleteEspositore(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteEspositore -> h.svc.DeleteEspositore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddImage godoc
// @Summary      Append a gallery image URL
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        espositoreID  path      string                   true  "exhibitor id"
// @Param        request       body      request.AddImageRequest  true  "request body"
// @Success      200           {object}  domain.Espositore
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /admin/espositori/{espositoreID}/images [post]
// @Security BearerAuth
func (h *EspositoreHandler) HandleAddImage(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	var req request.AddImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.AddImage(ctx.Request.Context(), id, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrEspositoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("espositore", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleAddImage -> h.svc.AddImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleRemoveImage godoc
// @Summary      Remove a gallery image by position
// @Tags         admin
// @Produce      json
// @Param        espositoreID  path      string  true  "exhibitor id"
// @Param        index         path      int     true  "image position"
// @Success      200           {object}  domain.Espositore
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /admin/espositori/{espositoreID}/images/{index} [delete]
// @Security BearerAuth
func (h *EspositoreHandler) HandleRemoveImage(ctx *gin.Context) {
	id := ctx.Param("espositoreID")

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.RemoveImage(ctx.Request.Context(), id, index)
	if err != nil {
		if errors.Is(err, service.ErrEspositoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("espositore", "ID", id))

			return
		}
		if errors.Is(err, service.ErrImageIndexOutOfRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveImage -> h.svc.RemoveImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	return ids
}
