package errors

import (
	"net/http"

	"matchdeportivo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No se encontró el usuario",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El nombre de usuario o el correo ya están registrados",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"No se pudo crear el usuario",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	// Password strength errors
	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"La contraseña debe tener al menos 8 caracteres",
		"",
	)

	ErrPasswordNoUppercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_UPPERCASE",
		"La contraseña debe contener al menos una letra mayúscula",
		"",
	)

	ErrPasswordNoLowercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_LOWERCASE",
		"La contraseña debe contener al menos una letra minúscula",
		"",
	)

	ErrPasswordNoNumber = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_NUMBER",
		"La contraseña debe contener al menos un número",
		"",
	)

	ErrPasswordNoSpecialChar = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_SPECIAL_CHAR",
		"La contraseña debe contener al menos un carácter especial",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"La contraseña contiene palabras no permitidas",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontró el perfil",
		"",
	)

	ErrInvalidLocation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION",
		"Latitud y longitud deben indicarse juntas y dentro de rango",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"El radio de búsqueda debe estar entre 1 y 50 km",
		"",
	)

	// Activity-related errors
	ErrActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVITY_NOT_FOUND",
		"No se encontró la actividad",
		"",
	)

	ErrActivityFull = NewBaseError(
		http.StatusConflict,
		"ACTIVITY_FULL",
		"No quedan cupos disponibles",
		"",
	)

	ErrAlreadyParticipant = NewBaseError(
		http.StatusConflict,
		"ALREADY_PARTICIPANT",
		"Ya estás inscrito en esta actividad",
		"",
	)

	ErrNotParticipant = NewBaseError(
		http.StatusConflict,
		"NOT_PARTICIPANT",
		"El usuario no participa en esta actividad",
		"",
	)

	ErrNotOrganizer = NewBaseError(
		http.StatusForbidden,
		"NOT_ORGANIZER",
		"Solo el organizador puede realizar esta acción",
		"",
	)

	ErrCapacityBelowParticipants = NewBaseError(
		http.StatusConflict,
		"CAPACITY_BELOW_PARTICIPANTS",
		"El cupo no puede ser menor que el número de participantes",
		"",
	)

	ErrInvalidActivity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVITY",
		"Los datos de la actividad no son válidos",
		"",
	)

	ErrInvalidInviteCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INVITE_CODE",
		"El código QR de invitación no es válido",
		"",
	)

	// Notification and device errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"No se encontró la notificación",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No se encontró el dispositivo",
		"",
	)

	ErrDeviceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"El dispositivo ya está registrado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción en la base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Token de acceso ausente, inválido o expirado",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto con el estado actual del recurso",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
