package middleware

import (
	"context"
	"net/http"

	"sahl/internal/access"

	"github.com/gin-gonic/gin"
)

// AccessService is a local interface so the middleware does not depend on the
// concrete access implementation.
type AccessService interface {
	Enforce(ctx context.Context, req access.EnforceRequest) (bool, error)
}

// Authorize checks the branch/permission guard for a (resource, action) pair.
// A branch_id query parameter, when present, becomes the target branch so
// non-admins can never read across branches.
func Authorize(service AccessService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok1 := c.Get("user_id")
		branchID, ok2 := c.Get("branch_id")

		if !ok1 || !ok2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := access.EnforceRequest{
			UserID:   userID.(string),
			Role:     c.GetString("role"),
			BranchID: branchID.(string),
			TargetID: c.Query("branch_id"),
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSameBranch pins non-admins to the branch named by the given route
// parameter.
func RequireSameBranch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == access.RoleAdmin {
			c.Next()
			return
		}
		if target := c.Param(param); target != "" && target != c.GetString("branch_id") {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "You do not have access to this branch",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
