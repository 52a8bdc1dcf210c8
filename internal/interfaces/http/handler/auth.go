package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wms/backend/internal/infrastructure/auth"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles session endpoints. Token issuance lives in the
// identity provider; this API only introspects and revokes its own tokens.
type AuthHandler struct {
	BaseHandler
	blacklist auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{blacklist: blacklist}
}

// RegisterRoutes registers auth routes on an authenticated group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
		authGroup.POST("/logout", h.Logout)
	}
}

// Me returns the identity the token resolved to
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	name := ""
	if claims != nil {
		name = claims.Name
	}

	h.Success(c, gin.H{
		"id":   actor.ID,
		"name": name,
		"role": actor.Role.String(),
	})
}

// Logout revokes the presented token for the remainder of its lifetime
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if h.blacklist != nil && claims.ID != "" {
		if ttl := claims.RemainingTTL(); ttl > 0 {
			if err := h.blacklist.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
				h.InternalError(c, "Failed to revoke token")
				return
			}
		}
	}
	h.NoContent(c)
}
