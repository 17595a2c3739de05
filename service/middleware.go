package service

import (
	"strings"

	"vznx/response"
	"vznx/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the entity routes: a valid Bearer token is required
// and its identity is exposed on the context for handlers that care.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			response.UnauthorizedError(c, "missing bearer token", response.InvalidToken)
			c.Abort()
			return
		}
		msg, err := util.GetTokenMgr().CheckToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			response.UnauthorizedError(c, "invalid or expired token", response.TokenExpired)
			c.Abort()
			return
		}
		c.Set("x-user-id", msg.UserID)
		c.Set("x-user-name", msg.Username)
		c.Set("x-user-role", msg.Role)
		c.Next()
	}
}

// CORSMiddleware lets the browser client talk to the API from another
// origin.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	})
}
