// middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userRepo "medibook/database/repository/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller's ID and role
// under "userID" and "role". Deactivated accounts are rejected. When cache is
// non-nil the account status is read through Redis.
func JWTAuthMiddleware(users userRepo.UserRepository, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		active, err := accountActive(c.Request.Context(), users, cache, userID)
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		case err != nil:
			zap.L().Error("Failed to verify account status", zap.String("userID", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		case !active:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// accountActive consults the auth cache first and falls back to the repository on a miss.
// Cache failures are logged and treated as misses.
func accountActive(ctx context.Context, users userRepo.UserRepository, cache *redis.Client, userID string) (bool, error) {
	key := utils.AuthCacheKey(userID)
	if cache != nil {
		cached, err := cache.Get(ctx, key).Result()
		switch {
		case err == nil:
			return cached == utils.AccountActive, nil
		case !errors.Is(err, redis.Nil):
			zap.L().Warn("Auth cache unavailable, falling back to database", zap.Error(err))
			cache = nil
		}
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if cache != nil {
		status := utils.AccountInactive
		if user.IsActive {
			status = utils.AccountActive
		}
		if err := cache.Set(ctx, key, status, utils.AuthCacheTTL).Err(); err != nil {
			zap.L().Warn("Failed to cache account status", zap.String("userID", userID), zap.Error(err))
		}
	}
	return user.IsActive, nil
}
