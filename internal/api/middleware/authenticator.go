package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sposioggi/espositori-api/internal/api/handler/v1/response"
	"github.com/sposioggi/espositori-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyUserID holds the provider user id of the live session.
	ContextKeyUserID = "userID"
	// ContextKeyAccessToken holds the raw bearer token for pass-through
	// calls to the auth provider.
	ContextKeyAccessToken = "accessToken"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT gates admin routes. The token is issued by the external auth
// provider and verified locally with its signing secret; no protected
// handler runs without a live session.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))

			return
		}

		subject, err := jwthelper.ParseSubject(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired session"))

			return
		}

		ctx.Set(ContextKeyUserID, subject)
		ctx.Set(ContextKeyAccessToken, token)

		ctx.Next()
	}
}
