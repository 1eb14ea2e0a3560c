package domain

import "fmt"

// Immutable geographic point (longitude, latitude), WGS 84.
type GeoPoint struct {
	Lon float64
	Lat float64
}

// Render the point as "lon,lat" for external route API compatibility.
func (p GeoPoint) LocationParam() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lon, p.Lat)
}
