package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
)

// AuthMiddleware validates the bearer token and loads the authenticated user
// into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			utils.LogError("User not found for token: %v", err)
			utils.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the user when a valid bearer token is present
// but never rejects the request. Used by endpoints that accept anonymous
// callers, such as review voting.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			c.Next()
			return
		}

		c.Set("user", user)
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRoles declares the roles allowed past this point. It expects
// AuthMiddleware to have run first.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		user, ok := userVal.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			utils.InternalServerError(c, "Invalid user in context", nil)
			c.Abort()
			return
		}

		if !allowed[user.Role] {
			utils.LogError("User %d with role %s attempted restricted access", user.ID, user.Role)
			utils.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
