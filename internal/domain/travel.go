package domain

// TravelMinutes is an optional duration in minutes. Valid distinguishes a
// measured zero from data the provider never returned, so downstream code
// cannot mistake one for the other.
type TravelMinutes struct {
	Minutes float64
	Valid   bool
}

// Kilometers is an optional distance. Same absence semantics as TravelMinutes.
type Kilometers struct {
	Km    float64
	Valid bool
}

// TransportMode identifies one way of reaching the meeting point.
type TransportMode string

const (
	ModeDriving   TransportMode = "driving"
	ModeTransit   TransportMode = "transit"
	ModeBicycling TransportMode = "bicycling"
	// ModeNone is the sentinel returned when no mode clears its threshold.
	ModeNone TransportMode = "none"
)

// One leg of a transit itinerary in traversal order.
type TransitLeg struct {
	Kind        string // "walking", "railway" or "bus"
	Minutes     float64
	DistanceM   int // walking legs only
	Line        string
	Departure   string
	Arrival     string
	Instruction string
}

// Breakdown of the shortest transit itinerary offered by the route provider.
// TransferMinutes is an estimate (4 minutes per transfer), not provider data.
type TransitDetail struct {
	TotalMinutes    float64
	RunningMinutes  float64
	WalkingMinutes  float64
	TransferCount   int
	TransferMinutes float64
	Legs            []TransitLeg
}

// Per-person departure schedule entry. Times are clock strings ("HH:MM")
// with no date component: a departure that rolls past midnight looks like a
// same-day time. The source data carries no dates, so this ambiguity is
// accepted rather than papered over.
type DepartureEntry struct {
	Name          string
	TravelMinutes float64
	BufferMinutes float64
	DepartureTime string
	ArrivalTime   string
}
