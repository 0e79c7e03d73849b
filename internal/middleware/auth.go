package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/config"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

const buildingContextKey = "building"

// BuildingResolver maps an API key to its active building. Unknown keys
// and keys of deactivated buildings both come back (nil, nil).
type BuildingResolver interface {
	ResolveToken(ctx context.Context, apiToken string) (*domain.Building, error)
}

type AuthMiddleware struct {
	config    *config.Config
	buildings BuildingResolver
}

func NewAuthMiddleware(config *config.Config, buildings BuildingResolver) *AuthMiddleware {
	return &AuthMiddleware{
		config:    config,
		buildings: buildings,
	}
}

// APIKeyAuth authenticates gate and management requests by the X-API-Key
// header and stores the resolved building on the request context. The
// rejection message never distinguishes an unknown key from a revoked one.
func (m *AuthMiddleware) APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header is required"})
			c.Abort()
			return
		}

		building, err := m.buildings.ResolveToken(c.Request.Context(), apiKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify API key"})
			c.Abort()
			return
		}
		if building == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or inactive API key."})
			c.Abort()
			return
		}

		c.Set(buildingContextKey, building)
		c.Next()
	}
}

// AdminAuth guards the building-management endpoints with the static
// operator token. Comparison is constant time.
func (m *AuthMiddleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminToken := c.GetHeader("X-Admin-Token")
		if adminToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Admin-Token header is required"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(adminToken), []byte(m.config.AdminToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentBuilding returns the building set by APIKeyAuth.
func CurrentBuilding(c *gin.Context) (*domain.Building, bool) {
	value, exists := c.Get(buildingContextKey)
	if !exists {
		return nil, false
	}
	building, ok := value.(*domain.Building)
	return building, ok
}
