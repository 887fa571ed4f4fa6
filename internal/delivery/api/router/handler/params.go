package handler

import (
	"strconv"

	"matchdeportivo/internal/delivery/api/middleware"
	domainerrors "matchdeportivo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// authenticatedUser returns the caller's ID or the error to answer with.
func authenticatedUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("identificador inválido: " + name)
	}

	return id, nil
}

// pagination reads ?limit= and ?offset=. Missing values are 0 and left to the use case defaults.
func pagination(c echo.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(c, "offset"); err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " debe ser un número entero")
	}

	return value, nil
}
