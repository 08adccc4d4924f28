package middleware

import (
	"net/http"
	"strings"

	"forum_api/internal/pkg"
	"forum_api/internal/repository/redis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware verifies the bearer token and the redis session allowlist,
// then injects the user id into the request context. The concrete failure
// (expired, bad signature, malformed, revoked session) is logged; the client
// always sees the same 401.
func AuthMiddleware(tokens *pkg.TokenService, sessions *redis.SessionRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}
		tokenStr := parts[1]

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			log.Info("auth rejected", zap.Error(err))
			unauthorized(c)
			return
		}

		current, err := sessions.Get(c.Request.Context(), userID)
		if err != nil || current != tokenStr {
			log.Info("auth rejected",
				zap.Uint64("user_id", userID),
				zap.String("reason", "session revoked"))
			unauthorized(c)
			return
		}

		if err := sessions.Extend(c.Request.Context(), userID); err != nil {
			log.Warn("session extend failed", zap.Uint64("user_id", userID), zap.Error(err))
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
}

// UserID pulls the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
