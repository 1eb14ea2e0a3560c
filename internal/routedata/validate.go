package routedata

import (
	"strings"

	"meeting-point-service/internal/domain"
)

// Bounds for sanity-checking extracted values. Anything outside is rejected
// outright rather than clamped; bad provider data must not leak downstream.
const (
	maxTravelMinutes = 600
	maxDistanceKm    = 500

	// Transit plausibility rules: a transit leg slower than an hour over a
	// short hop, or faster than five minutes over a long one, is provider
	// noise. Anything over three hours is rejected unconditionally.
	transitSlowMinutes = 60
	transitSlowMaxKm   = 20
	transitFastMinutes = 5
	transitFastMinKm   = 10
	transitCeilingMin  = 180
)

// ValidCoordinates reports whether lon/lat form a real-world coordinate.
func ValidCoordinates(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// ValidTravelTime reports whether a travel time is present and strictly
// within (0, 600) minutes.
func ValidTravelTime(t domain.TravelMinutes) bool {
	return t.Valid && t.Minutes > 0 && t.Minutes < maxTravelMinutes
}

// ValidDistanceKm reports whether a distance is strictly within (0, 500) km.
func ValidDistanceKm(km float64) bool {
	return km > 0 && km < maxDistanceKm
}

// PlausibleTransitTime cross-checks a transit duration against the
// straight-line distance it covers.
func PlausibleTransitTime(t domain.TravelMinutes, distanceKm float64) bool {
	if !t.Valid {
		return false
	}
	if t.Minutes > transitSlowMinutes && distanceKm < transitSlowMaxKm {
		return false
	}
	if t.Minutes < transitFastMinutes && distanceKm > transitFastMinKm {
		return false
	}
	if t.Minutes > transitCeilingMin {
		return false
	}
	return true
}

// ValidVenueRecord reports whether a loose venue record carries the
// required fields (name, rating, review_count, location) with a rating
// that coerces into [0, 5]. Coercion failure means invalid.
func ValidVenueRecord(record map[string]any) bool {
	for _, field := range []string{"name", "rating", "review_count", "location"} {
		v, ok := record[field]
		if !ok || v == nil {
			return false
		}
	}

	rating, ok := toFloat(record["rating"])
	if !ok || rating < 0 || rating > 5 {
		return false
	}

	return true
}

// ParseVenue converts a loose venue record into a typed Venue. The record
// contract is: id, name, rating, review_count, location {lon, lat} or
// "lon,lat" string, optional distance_km. Returns false for records that
// fail ValidVenueRecord or whose location cannot be read.
func ParseVenue(record map[string]any) (domain.Venue, bool) {
	if !ValidVenueRecord(record) {
		return domain.Venue{}, false
	}

	location, ok := parseLocation(record["location"])
	if !ok {
		return domain.Venue{}, false
	}

	rating, _ := toFloat(record["rating"])
	reviews, ok := toFloat(record["review_count"])
	if !ok || reviews < 0 {
		return domain.Venue{}, false
	}

	v := domain.Venue{
		ID:          asString(record["id"]),
		Name:        asString(record["name"]),
		Rating:      rating,
		ReviewCount: int(reviews),
		Location:    location,
	}

	if raw, ok := record["distance_km"]; ok {
		if km, ok := toFloat(raw); ok {
			v.DistanceKm = &km
		}
	}

	return v, true
}

func parseLocation(v any) (domain.GeoPoint, bool) {
	if m := asMap(v); m != nil {
		lon, okLon := toFloat(m["lon"])
		lat, okLat := toFloat(m["lat"])
		if okLon && okLat && ValidCoordinates(lon, lat) {
			return domain.GeoPoint{Lon: lon, Lat: lat}, true
		}
		return domain.GeoPoint{}, false
	}

	// Provider POI records encode location as "lon,lat".
	if s := asString(v); s != "" {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) == 2 {
			lon, okLon := toFloat(parts[0])
			lat, okLat := toFloat(parts[1])
			if okLon && okLat && ValidCoordinates(lon, lat) {
				return domain.GeoPoint{Lon: lon, Lat: lat}, true
			}
		}
	}

	return domain.GeoPoint{}, false
}
