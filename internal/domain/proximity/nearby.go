// Package proximity filters and ranks activities and players by great-circle
// distance. It works on already fetched snapshots and never touches storage.
package proximity

import (
	"cmp"
	"slices"

	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/errors"

	"github.com/google/uuid"
)

// Advisory tells the caller why a listing could not be distance filtered.
type Advisory string

const (
	// AdvisoryNone means the listing was filtered by the viewer's location.
	AdvisoryNone Advisory = ""
	// AdvisoryLocationNotConfigured means the viewer has no saved location.
	AdvisoryLocationNotConfigured Advisory = "location_not_configured"
	// AdvisoryLocationInvalid means the viewer's saved location could not be read.
	AdvisoryLocationInvalid Advisory = "location_invalid"
)

// RankedActivity is an activity with its transient distance from the viewer.
type RankedActivity struct {
	Activity   *entity.Activity
	DistanceKm *float64 // Rounded to 0.1 km. Nil for own activities and unfiltered listings.
}

// Listing is the result of FilterNearby.
type Listing struct {
	Activities []RankedActivity // Own activities first, then the rest.
	Advisory   Advisory
	Skipped    []uuid.UUID // Candidates dropped because their coordinates could not be read.
}

// FilterNearby builds the activity listing seen by viewerID.
//
// Activities organized by the viewer always come first, in input order and
// without distance. When the viewer's location is missing or unreadable the
// remaining candidates follow unfiltered and the Advisory is set. Otherwise
// only candidates within the viewer's radius (default 50 km) are kept, sorted
// by ascending distance with ties in input order.
func FilterNearby(viewerID uuid.UUID, viewer *entity.Profile, candidates []*entity.Activity) Listing {
	mine := make([]RankedActivity, 0)
	others := make([]*entity.Activity, 0, len(candidates))
	for _, activity := range candidates {
		if activity == nil {
			continue
		}
		if activity.IsOrganizer(viewerID) {
			mine = append(mine, RankedActivity{Activity: activity})
		} else {
			others = append(others, activity)
		}
	}

	listing := Listing{Activities: mine}

	var location geo.GeoPoint
	var radius *int
	if viewer != nil {
		location = viewer.Location
		radius = viewer.RadiusKm
	}

	origin, err := location.Point()
	if err != nil {
		listing.Advisory = AdvisoryLocationNotConfigured
		if errors.Is(err, geo.ErrMalformedCoordinate) {
			listing.Advisory = AdvisoryLocationInvalid
		}
		for _, activity := range others {
			listing.Activities = append(listing.Activities, RankedActivity{Activity: activity})
		}

		return listing
	}

	limit := float64(constants.DefaultSearchRadiusKm)
	if radius != nil {
		limit = float64(*radius)
	}

	nearby := make([]RankedActivity, 0, len(others))
	for _, activity := range others {
		target, err := activity.Location.Point()
		if err != nil {
			listing.Skipped = append(listing.Skipped, activity.ID)

			continue
		}

		distance := geo.RoundKm(geo.DistanceKm(origin, target))
		if distance > limit {
			continue
		}
		nearby = append(nearby, RankedActivity{Activity: activity, DistanceKm: &distance})
	}

	slices.SortStableFunc(nearby, func(a, b RankedActivity) int {
		return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
	})

	listing.Activities = append(listing.Activities, nearby...)

	return listing
}
