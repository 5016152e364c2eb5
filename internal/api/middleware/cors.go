package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = allowedDomains
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")

	return cors.New(config)
}
