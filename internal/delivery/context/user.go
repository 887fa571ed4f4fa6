package context

import (
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated user ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the key for the authenticated user's roles in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetUser stores the authenticated identity in echo.Context.
func SetUser(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user ID, if the request was authenticated.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}

// HasRole reports whether the authenticated user holds role.
func HasRole(c echo.Context, role string) bool {
	return slices.Contains(GetRoles(c), role)
}
