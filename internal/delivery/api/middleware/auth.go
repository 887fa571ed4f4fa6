package middleware

import (
	"strings"

	deliverycontext "matchdeportivo/internal/delivery/context"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("falta el encabezado Authorization")
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthorized.WithDetails("el token debe ser de tipo Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}

		deliverycontext.SetUser(c, claims.UserID, claims.Roles)

		// Request-scoped logger also carries the user from here on.
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", claims.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole checks the authenticated user holds role. Use after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.HasRole(c, role.String()) {
				return domainerrors.ErrForbidden.WithDetails("se requiere el rol " + role.String())
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRoles returns the authenticated user's roles set by Authenticate.
func GetRoles(c echo.Context) ([]string, bool) {
	roles := deliverycontext.GetRoles(c)

	return roles, roles != nil
}
