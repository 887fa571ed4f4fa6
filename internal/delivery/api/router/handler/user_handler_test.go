package handler

import (
	"net/http"
	"testing"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	mockUsecase "matchdeportivo/internal/mocks/usecase"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	e      *echo.Echo
	userID uuid.UUID
	userUC *mockUsecase.MockUserUsecase
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: testLogger()})
	userID := uuid.New()

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/api/v1/me", h.Me, asUser(userID))

	return userHandlerFixtures{e: e, userID: userID, userUC: userUC}
}

func TestUserHandler_Register(t *testing.T) {
	fx := createTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Username: "lucia10", Email: "lucia@example.com", Name: "Lucía", Roles: entity.Roles{entity.RolePlayer}}
	fx.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "lucia10",
			Email:    "lucia@example.com",
			Name:     "Lucía",
			Password: "Cancha#2026",
		}).
		Return(user, nil)

	body := `{"username":"lucia10","email":"lucia@example.com","name":"Lucía","password":"Cancha#2026"}`
	rec := doRequest(fx.e, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out UserResponse
	decodeData(t, rec, &out)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, []string{"player"}, out.Roles)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_Validation(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/auth/register", `{"username":"x","email":"nope","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	body := `{"username":"lucia10","email":"lucia@example.com","name":"Lucía","password":"Cancha#2026"}`
	rec := doRequest(fx.e, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
}

func TestUserHandler_Login(t *testing.T) {
	fx := createTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Username: "lucia10"}
	fx.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "lucia10", Password: "Cancha#2026"}).
		Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token", User: user}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/auth/login", `{"username":"lucia10","password":"Cancha#2026"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out LoginResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(fx.e, http.MethodPost, "/auth/login", `{"username":"lucia10","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
}

func TestUserHandler_Me(t *testing.T) {
	fx := createTestUserHandler(t)

	user := &entity.User{ID: fx.userID, Username: "lucia10", Profile: &entity.Profile{UserID: fx.userID, Nickname: "Lu"}}
	fx.userUC.EXPECT().GetUser(mock.Anything, fx.userID).Return(user, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/me", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out UserResponse
	decodeData(t, rec, &out)
	require.NotNil(t, out.Profile)
	assert.Equal(t, "Lu", out.Profile.Nickname)
}
