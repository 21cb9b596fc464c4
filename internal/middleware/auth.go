package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

//go:generate mockery --name RevocationChecker --output ../mocks
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

//go:generate mockery --name OwnerAccessChecker --output ../mocks
type OwnerAccessChecker interface {
	CheckOwnerAccess(ctx context.Context, ownerID string) error
}

type AuthMiddleware struct {
	tokens      *utils.TokenManager
	revocations RevocationChecker
	access      OwnerAccessChecker
	logger      *logger.Logger
}

func NewAuthMiddleware(tokens *utils.TokenManager, revocations RevocationChecker, access OwnerAccessChecker, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		revocations: revocations,
		access:      access,
		logger:      logger,
	}
}

// JWTAuth verifies the bearer token and stores its claims on the gin context.
// Browsers cannot set headers on websocket upgrades, so GET requests may pass
// the token as ?access_token=.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		jti, _ := claims[string(utils.TokenIDKey)].(string)
		if jti != "" && m.revocations != nil {
			revoked, err := m.revocations.IsRevoked(c.Request.Context(), jti)
			if err != nil {
				// Fail open: redis being down should not log everyone out.
				m.logger.Error("failed to check token revocation", err)
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
		}

		c.Set(string(utils.ClaimsKey), claims)
		for _, key := range []utils.ContextKey{utils.UserIDKey, utils.RoleKey, utils.OwnerIDKey, utils.TenantIDKey, utils.TokenIDKey} {
			if v, ok := claims[string(key)]; ok {
				c.Set(string(key), v)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if c.Request.Method == http.MethodGet {
			if token := c.Query("access_token"); token != "" {
				return token, true
			}
		}
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireRole lets the request through when the token role is one of roles.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		role, _ := claims[string(utils.RoleKey)].(string)
		if !domain.HasAnyRole(role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireOwnerAccess blocks owners that are pending, locked or, when
// subscriptions are enforced, without an active one. Other roles pass.
func (m *AuthMiddleware) RequireOwnerAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}
		if role, _ := claims[string(utils.RoleKey)].(string); role != string(domain.RoleOwner) {
			c.Next()
			return
		}

		ownerID, _ := claims[string(utils.OwnerIDKey)].(string)
		if ownerID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No owner profile found"})
			return
		}

		err := m.access.CheckOwnerAccess(c.Request.Context(), ownerID)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrPaymentRequired):
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			m.logger.Error("failed to check owner access", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

func claimsFrom(c *gin.Context) (jwt.MapClaims, bool) {
	raw, exists := c.Get(string(utils.ClaimsKey))
	if !exists {
		return nil, false
	}
	claims, ok := raw.(jwt.MapClaims)
	return claims, ok
}
