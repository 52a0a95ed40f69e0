package handlers

import (
	"github.com/gin-gonic/gin"

	"quizmentor/internal/models"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// canAccessUser implements the owner-or-admin rule for user-scoped routes.
func canAccessUser(c *gin.Context, userID string) bool {
	return c.GetString(CtxUserID) == userID || c.GetString(CtxRole) == models.RoleAdmin
}
