package services

import "meeting-point-service/internal/domain"

// One recommended way to reach the meeting point. Priority 1 is best;
// the sentinel "no viable mode" entry carries priority 0.
type TransportOption struct {
	Mode     domain.TransportMode
	Minutes  float64
	Priority int
}

// Distance brackets and per-mode duration thresholds for mode selection.
// The values are fixed contracts inherited from field tuning; priorities
// follow the bracket's fixed order, not a sort on duration.
const (
	shortTripKm = 3
	midTripKm   = 10

	bicyclingMaxMin = 30

	transitShortMaxMin = 30
	transitMidMaxMin   = 45
	transitLongMaxMin  = 120

	drivingShortMaxMin = 20
	drivingMidMaxMin   = 40
	drivingLongMaxMin  = 60

	// Duration reported on the sentinel entry when nothing qualifies.
	noModeMinutes = 999
)

// RecommendTransportModes selects viable transport modes for the given
// straight-line distance and per-mode durations in minutes.
//
// Bicycling is only considered for trips of at most 3 km and only when a
// bicycling duration was supplied. The result is never empty: when no mode
// clears its threshold, a single sentinel entry is returned so callers
// always have something to present.
func RecommendTransportModes(distanceKm, drivingMin, transitMin float64, bicyclingMin *float64) []TransportOption {
	var out []TransportOption

	switch {
	case distanceKm <= shortTripKm:
		if bicyclingMin != nil && *bicyclingMin < bicyclingMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeBicycling, Minutes: *bicyclingMin, Priority: 1})
		}
		if transitMin < transitShortMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeTransit, Minutes: transitMin, Priority: 2})
		}
		if drivingMin < drivingShortMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeDriving, Minutes: drivingMin, Priority: 3})
		}

	case distanceKm <= midTripKm:
		if drivingMin < drivingMidMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeDriving, Minutes: drivingMin, Priority: 1})
		}
		if transitMin < transitMidMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeTransit, Minutes: transitMin, Priority: 2})
		}

	default:
		if drivingMin < drivingLongMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeDriving, Minutes: drivingMin, Priority: 1})
		}
		if transitMin < transitLongMaxMin {
			out = append(out, TransportOption{Mode: domain.ModeTransit, Minutes: transitMin, Priority: 2})
		}
	}

	if len(out) == 0 {
		return []TransportOption{{Mode: domain.ModeNone, Minutes: noModeMinutes, Priority: 0}}
	}
	return out
}
