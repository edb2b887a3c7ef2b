package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/internal/policy"
	"inkwell/pkg/utils"
)

const authContextKey = "auth_context"

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "token"

// SessionMiddleware resolves the session token (cookie first, then a
// Bearer header) into a policy.AuthContext exactly once per request.
// It never aborts: public endpoints run with no AuthContext, and the
// gates below decide what that means.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			// Invalid and absent tokens are indistinguishable downstream.
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(authContextKey, &policy.AuthContext{
			UserID: userID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   db_models.Role(claims.Role),
		})
		c.Next()
	}
}

// CurrentAuth returns the AuthContext resolved by SessionMiddleware.
func CurrentAuth(c *gin.Context) (*policy.AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	auth, ok := v.(*policy.AuthContext)
	return auth, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentAuth(c); !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(role db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := CurrentAuth(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		if err := policy.RequireRole(auth, role); err != nil {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
