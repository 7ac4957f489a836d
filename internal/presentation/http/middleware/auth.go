package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medipos/billing-api/internal/presentation/http/dto/response"
	"github.com/medipos/billing-api/pkg/utils"
)

// Context keys set by AuthMiddleware.
const (
	ContextCashier  = "cashier"
	ContextTerminal = "terminal"
)

// AuthMiddleware validates the bearer token issued by the upstream
// identity service and puts the cashier and terminal identity on the
// request context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextCashier, claims.Cashier)
		c.Set(ContextTerminal, claims.Terminal)

		c.Next()
	}
}

// GetTerminal returns the POS terminal identity set by AuthMiddleware,
// or "" when the request is unauthenticated.
func GetTerminal(c *gin.Context) string {
	if v, ok := c.Get(ContextTerminal); ok {
		if terminal, ok := v.(string); ok {
			return terminal
		}
	}
	return ""
}

// GetCashier returns the cashier name set by AuthMiddleware, or "" when
// the request is unauthenticated.
func GetCashier(c *gin.Context) string {
	if v, ok := c.Get(ContextCashier); ok {
		if cashier, ok := v.(string); ok {
			return cashier
		}
	}
	return ""
}
