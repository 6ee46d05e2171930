package booking

import (
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// validateItinerary decides whether the snapshot of resolved flights forms a
// legal, bookable itinerary for the requested number of legs. flights must
// already be sorted by departure time. Pure decision over the snapshot, no
// side effects; the same snapshot always yields the same verdict.
func validateItinerary(flights []domain.Flight, requested int) error {
	if len(flights) != requested {
		return fmt.Errorf("%w: one or more flights not found", domain.ErrFlightNotFound)
	}

	for i, f := range flights {
		if !f.Bookable() {
			return fmt.Errorf("%w %s", domain.ErrFlightUnavailable, f.ID)
		}

		// Adjacent legs must not overlap: the connection departs strictly
		// after the previous leg lands.
		if i > 0 && !flights[i-1].ArrivalTime.Before(f.DepartureTime) {
			return domain.ErrNonConsecutiveItinerary
		}
	}
	return nil
}
