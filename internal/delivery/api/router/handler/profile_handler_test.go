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

type profileHandlerFixtures struct {
	e         *echo.Echo
	userID    uuid.UUID
	profileUC *mockUsecase.MockProfileUsecase
}

func createTestProfileHandler(t *testing.T) profileHandlerFixtures {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/api/v1/profile", asUser(userID))
	g.GET("", h.GetProfile)
	g.PUT("", h.UpdateProfile)
	e.GET("/api/v1/users/:id/profile", h.GetPublicProfile, asUser(userID))

	return profileHandlerFixtures{e: e, userID: userID, profileUC: profileUC}
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.userID).Return(nil, domainerrors.ErrProfileNotFound)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.PreferredSport != nil && *in.PreferredSport == "" &&
				in.Level != nil && *in.Level == entity.LevelAdvanced &&
				in.Latitude != nil && in.Longitude != nil &&
				in.RadiusKm != nil && *in.RadiusKm == 15 &&
				in.Nickname == nil
		})).
		Return(&entity.Profile{UserID: fx.userID}, nil)

	body := `{"preferred_sport":"","level":"avanzado","latitude":-34.6037,"longitude":-58.3816,"radius_km":15}`
	rec := doRequest(fx.e, http.MethodPut, "/api/v1/profile", body)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestProfileHandler_UpdateProfile_RadiusOutOfRange(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/profile", `{"radius_km":80}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"radius_km"`)
}

func TestProfileHandler_GetPublicProfile(t *testing.T) {
	fx := createTestProfileHandler(t)
	playerID := uuid.New()

	fx.profileUC.EXPECT().GetPublicProfile(mock.Anything, playerID).Return(&usecase.PublicProfile{
		UserID:         playerID,
		Username:       "cami",
		Name:           "Camila Sosa",
		HasProfile:     true,
		Nickname:       "Cami",
		PreferredSport: entity.SportRunning,
		Level:          entity.LevelIntermediate,
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/users/"+playerID.String()+"/profile", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out PublicProfileResponse
	decodeData(t, rec, &out)
	assert.Equal(t, playerID, out.UserID)
	assert.Equal(t, "Cami", out.Nickname)
	assert.Equal(t, entity.LevelIntermediate, out.Level)
	assert.True(t, out.HasProfile)
	assert.NotContains(t, rec.Body.String(), "latitude")
	assert.NotContains(t, rec.Body.String(), "radius_km")
}

func TestProfileHandler_GetPublicProfile_Errors(t *testing.T) {
	fx := createTestProfileHandler(t)
	missingID := uuid.New()

	fx.profileUC.EXPECT().GetPublicProfile(mock.Anything, missingID).Return(nil, domainerrors.ErrUserNotFound)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/users/"+missingID.String()+"/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(fx.e, http.MethodGet, "/api/v1/users/not-a-uuid/profile", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
