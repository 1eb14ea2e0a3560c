// Package routedata extracts normalized travel metrics from the loosely
// typed JSON payloads returned by the external mapping provider, and
// sanity-checks the extracted values.
//
// Provider data is inherently unreliable, so every extractor follows the
// same convention: any missing key, wrong type or malformed number degrades
// to an explicit absence, never an error or panic. Absence is first-class;
// one mode's missing data must not abort the rest of the pipeline.
package routedata

import (
	"fmt"
	"strconv"
	"strings"

	"meeting-point-service/internal/domain"
)

// DrivingMinutes reads the first path's duration (seconds) from a driving
// directions payload.
func DrivingMinutes(payload map[string]any) domain.TravelMinutes {
	paths := asSlice(asMap(payload["route"])["paths"])
	if len(paths) == 0 {
		return domain.TravelMinutes{}
	}

	seconds, ok := toFloat(asMap(paths[0])["duration"])
	if !ok {
		return domain.TravelMinutes{}
	}
	return domain.TravelMinutes{Minutes: seconds / 60.0, Valid: true}
}

// TransitMinutes reads the shortest duration across all offered transit
// itineraries. An itinerary without a duration field counts as zero, which
// the validators downstream then reject.
func TransitMinutes(payload map[string]any) domain.TravelMinutes {
	transits := asSlice(asMap(payload["route"])["transits"])
	if len(transits) == 0 {
		return domain.TravelMinutes{}
	}

	best := -1.0
	for _, t := range transits {
		seconds, ok := toFloat(valueOrZero(asMap(t), "duration"))
		if !ok {
			return domain.TravelMinutes{}
		}
		if best < 0 || seconds < best {
			best = seconds
		}
	}

	return domain.TravelMinutes{Minutes: best / 60.0, Valid: true}
}

// BicyclingMinutes reads the route-level duration (seconds) from a
// bicycling directions payload. A zero duration is treated as absent.
func BicyclingMinutes(payload map[string]any) domain.TravelMinutes {
	route := asMap(payload["route"])
	if route == nil {
		return domain.TravelMinutes{}
	}

	seconds, ok := toFloat(valueOrZero(route, "duration"))
	if !ok || seconds <= 0 {
		return domain.TravelMinutes{}
	}
	return domain.TravelMinutes{Minutes: seconds / 60.0, Valid: true}
}

// DistanceKm reads the route-level distance (meters) from any directions
// payload. Zero or missing distance is treated as absent.
func DistanceKm(payload map[string]any) domain.Kilometers {
	route := asMap(payload["route"])
	if route == nil {
		return domain.Kilometers{}
	}

	meters, ok := toFloat(valueOrZero(route, "distance"))
	if !ok || meters <= 0 {
		return domain.Kilometers{}
	}
	return domain.Kilometers{Km: meters / 1000.0, Valid: true}
}

// Estimated overhead per transfer, in minutes.
const transferOverheadMin = 4.0

// ExtractTransitDetail breaks the shortest transit itinerary into walking
// and running time, a transfer count with estimated transfer overhead, and
// an ordered list of human-readable legs. Returns nil when the payload has
// no usable transit data.
func ExtractTransitDetail(payload map[string]any) *domain.TransitDetail {
	transits := asSlice(asMap(payload["route"])["transits"])
	if len(transits) == 0 {
		return nil
	}

	var shortest map[string]any
	best := -1.0
	for _, t := range transits {
		m := asMap(t)
		seconds, ok := toFloat(valueOrZero(m, "duration"))
		if !ok {
			return nil
		}
		if best < 0 || seconds < best {
			best = seconds
			shortest = m
		}
	}
	if shortest == nil {
		return nil
	}

	detail := &domain.TransitDetail{TotalMinutes: best / 60.0}

	for _, s := range asSlice(shortest["segments"]) {
		segment := asMap(s)

		if walking := asMap(segment["walking"]); walking != nil {
			minutes, ok := toFloat(valueOrZero(walking, "duration"))
			if !ok {
				return nil
			}
			meters, ok := toFloat(valueOrZero(walking, "distance"))
			if !ok {
				return nil
			}

			detail.WalkingMinutes += minutes / 60.0
			detail.Legs = append(detail.Legs, domain.TransitLeg{
				Kind:        "walking",
				Minutes:     minutes / 60.0,
				DistanceM:   int(meters),
				Instruction: fmt.Sprintf("walk %dm", int(meters)),
			})
		}

		if railway := asMap(segment["railway"]); railway != nil {
			minutes, ok := toFloat(valueOrZero(railway, "duration"))
			if !ok {
				return nil
			}

			leg := domain.TransitLeg{
				Kind:      "railway",
				Minutes:   minutes / 60.0,
				Line:      asString(railway["name"]),
				Departure: stopName(railway, "departure_stop"),
				Arrival:   stopName(railway, "arrival_stop"),
			}
			leg.Instruction = legInstruction(leg)

			detail.RunningMinutes += leg.Minutes
			detail.TransferCount++
			detail.Legs = append(detail.Legs, leg)
		}

		if bus := asMap(segment["bus"]); bus != nil {
			buslines := asSlice(bus["buslines"])
			if len(buslines) == 0 {
				continue
			}

			// Only the first offered line of each bus segment counts.
			line := asMap(buslines[0])
			minutes, ok := toFloat(valueOrZero(line, "duration"))
			if !ok {
				return nil
			}

			leg := domain.TransitLeg{
				Kind:      "bus",
				Minutes:   minutes / 60.0,
				Line:      asString(line["name"]),
				Departure: stopName(line, "departure_stop"),
				Arrival:   stopName(line, "arrival_stop"),
			}
			leg.Instruction = legInstruction(leg)

			detail.RunningMinutes += leg.Minutes
			detail.TransferCount++
			detail.Legs = append(detail.Legs, leg)
		}
	}

	detail.TransferMinutes = float64(detail.TransferCount) * transferOverheadMin
	return detail
}

func legInstruction(leg domain.TransitLeg) string {
	return fmt.Sprintf("%s: %s -> %s", leg.Line, leg.Departure, leg.Arrival)
}

func stopName(m map[string]any, key string) string {
	return asString(asMap(m[key])["name"])
}

// valueOrZero mirrors the provider contract of treating a missing field as
// zero while still letting a malformed present field fail coercion.
func valueOrZero(m map[string]any, key string) any {
	if m == nil {
		return 0.0
	}
	v, ok := m[key]
	if !ok || v == nil {
		return 0.0
	}
	return v
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// toFloat coerces provider numbers, which arrive as JSON numbers or as
// numeric-looking strings, into a float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
