package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sposioggi/espositori-api/internal/api/handler/v1/request"
	"github.com/sposioggi/espositori-api/internal/api/handler/v1/response"
	"github.com/sposioggi/espositori-api/internal/authclient"
	"github.com/sposioggi/espositori-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (authclient.Session, error)
	CurrentSession(ctx context.Context, accessToken string) (authclient.User, error)
	Logout(ctx context.Context, accessToken string) error
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleLogin godoc
// @Summary      Login with email and password
// @Description  Delegates the credential check to the external auth provider
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	session, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		var providerErr *authclient.ProviderError
		if errors.As(err, &providerErr) {
			response.RenderErr(ctx, response.ErrWrongCredentials(providerErr))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: session.AccessToken,
		User:  session.User,
	})
}

// HandleGetSession godoc
// @Summary      Get the current session
// @Description  Resolves the bearer token to session-or-none
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  response.Err
// @Router       /auth/session [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetSession(ctx *gin.Context) {
	token, ok := bearerToken(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))

		return
	}

	user, err := h.svc.CurrentSession(ctx.Request.Context(), token)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("no active session"))

		return
	}

	ctx.JSON(http.StatusOK, response.SessionResponse{
		Authenticated: true,
		User:          user,
	})
}

// HandleLogout godoc
// @Summary      Logout
// @Description  Asks the auth provider to revoke the current session
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/logout [post]
// @Security BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	token, ok := bearerToken(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))

		return
	}

	if err := h.svc.Logout(ctx.Request.Context(), token); err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.svc.Logout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func bearerToken(ctx *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
