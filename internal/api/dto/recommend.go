package dto

type ParticipantRequest struct {
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// Venues are accepted as loose records on purpose: callers typically relay
// them straight from a places API, and the routedata validators decide
// which ones are usable.
type RecommendRequest struct {
	Participants  []ParticipantRequest `json:"participants"`
	Venues        []map[string]any     `json:"venues"`
	MeetingTime   string               `json:"meeting_time"`
	BufferMinutes float64              `json:"buffer_minutes"`
}

type PointResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type TransportOptionResponse struct {
	Mode     string  `json:"mode"`
	Minutes  float64 `json:"minutes"`
	Priority int     `json:"priority"`
}

type TransitLegResponse struct {
	Kind        string  `json:"kind"`
	Minutes     float64 `json:"minutes"`
	DistanceM   int     `json:"distance_m,omitempty"`
	Line        string  `json:"line,omitempty"`
	Instruction string  `json:"instruction"`
}

type TransitDetailResponse struct {
	TotalMinutes    float64              `json:"total_minutes"`
	RunningMinutes  float64              `json:"running_minutes"`
	WalkingMinutes  float64              `json:"walking_minutes"`
	TransferCount   int                  `json:"transfer_count"`
	TransferMinutes float64              `json:"transfer_minutes"`
	Legs            []TransitLegResponse `json:"legs"`
}

type ParticipantLegResponse struct {
	Name             string                    `json:"name"`
	StraightLineKm   float64                   `json:"straight_line_km"`
	TravelMinutes    *float64                  `json:"travel_minutes,omitempty"`
	DrivingMinutes   *float64                  `json:"driving_minutes,omitempty"`
	TransitMinutes   *float64                  `json:"transit_minutes,omitempty"`
	BicyclingMinutes *float64                  `json:"bicycling_minutes,omitempty"`
	RouteDistanceKm  *float64                  `json:"route_distance_km,omitempty"`
	Options          []TransportOptionResponse `json:"options,omitempty"`
	Transit          *TransitDetailResponse    `json:"transit,omitempty"`
}

type DispersionResponse struct {
	MeanMinutes      float64 `json:"mean_minutes"`
	Variance         float64 `json:"variance"`
	MaxSpreadMinutes float64 `json:"max_spread_minutes"`
	Score            int     `json:"score"`
	Level            string  `json:"level"`
	Advice           string  `json:"advice"`
}

type RankedVenueResponse struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	DistanceKm  float64 `json:"distance_km"`
	Score       float64 `json:"score"`
}

type DepartureResponse struct {
	Name          string  `json:"name"`
	TravelMinutes float64 `json:"travel_minutes"`
	BufferMinutes float64 `json:"buffer_minutes"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
}

type RecommendResponse struct {
	Centroid     PointResponse            `json:"centroid"`
	Participants []ParticipantLegResponse `json:"participants"`
	Dispersion   *DispersionResponse      `json:"dispersion,omitempty"`
	Venues       []RankedVenueResponse    `json:"venues"`
	Departures   []DepartureResponse      `json:"departures,omitempty"`
}
