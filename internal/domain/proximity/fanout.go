package proximity

import (
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/geo"

	"github.com/google/uuid"
)

// Match is a player who should hear about a new activity.
type Match struct {
	UserID     uuid.UUID
	DistanceKm float64 // Rounded to 0.1 km.
}

// FanOutTargets is the result of FindNearbyUsers.
type FanOutTargets struct {
	Matches []Match     // Unordered.
	Skipped []uuid.UUID // Profiles dropped because their coordinates could not be read.
}

// FindNearbyUsers selects the profiles to notify about a new activity: same
// sport (case-insensitive), not the organizer, location and radius both
// configured, and the activity within the profile's own radius.
//
// When the activity itself has no readable location the targets are empty and
// the location error is returned for the caller to log.
func FindNearbyUsers(activity *entity.Activity, profiles []*entity.Profile) (FanOutTargets, error) {
	var targets FanOutTargets
	if activity == nil {
		return targets, geo.ErrLocationNotSet
	}

	origin, err := activity.Location.Point()
	if err != nil {
		return targets, err
	}

	for _, profile := range profiles {
		if profile == nil || profile.UserID == activity.OrganizerID {
			continue
		}
		if !entity.SameSport(profile.PreferredSport, activity.Sport) {
			continue
		}
		// no default radius here: an unset radius opts out of notifications
		if profile.RadiusKm == nil || !profile.Location.IsSet() {
			continue
		}

		point, err := profile.Location.Point()
		if err != nil {
			targets.Skipped = append(targets.Skipped, profile.UserID)

			continue
		}

		distance := geo.RoundKm(geo.DistanceKm(origin, point))
		if distance <= float64(*profile.RadiusKm) {
			targets.Matches = append(targets.Matches, Match{UserID: profile.UserID, DistanceKm: distance})
		}
	}

	return targets, nil
}
