package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"learnhub-api/internal/domain/access"
	"learnhub-api/internal/domain/user"
	"learnhub-api/internal/handler/httperr"
	"learnhub-api/internal/pkg/cookie"
	"learnhub-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipalKey = "principal"
	ctxSessionKey   = "session_id"
)

type AuthMiddleware struct {
	resolver usecase.PrincipalResolver
}

func NewAuthMiddleware(resolver usecase.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth resolves the bearer token into a principal, or rejects with the
// login redirect. It never reveals which role a route would have required.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			decision := access.Evaluate(user.Anonymous(), access.AnyAuthenticated())
			httperr.AbortWithRedirect(c, http.StatusUnauthorized,
				usecase.ErrSessionRevoked, "Authentication required", decision.RedirectTo)
			return
		}

		resolved, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("token resolution failed in auth middleware", "error", err.Error())
			httperr.AbortWithRedirect(c, http.StatusUnauthorized,
				err, "Invalid or expired session", access.LoginPath)
			return
		}

		c.Set(ctxPrincipalKey, resolved.Principal)
		c.Set(ctxSessionKey, resolved.SessionID)
		c.Next()
	}
}

// RequireRole applies the role gate; it assumes RequireAuth ran first.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)

		decision := access.Evaluate(principal, access.RequireRole(roles...))
		if decision.Admit {
			c.Next()
			return
		}

		status := http.StatusForbidden
		if !principal.Authenticated {
			status = http.StatusUnauthorized
		}
		httperr.AbortWithRedirect(c, status,
			usecase.ErrSessionRevoked, "Insufficient permissions", decision.RedirectTo)
	}
}

// GetPrincipal returns the request principal, or the anonymous principal when
// none was resolved. Guards stay fail-closed either way.
func GetPrincipal(c *gin.Context) user.Principal {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Anonymous()
	}
	principal, ok := v.(user.Principal)
	if !ok {
		return user.Anonymous()
	}
	return principal
}

func GetSessionID(c *gin.Context) string {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
