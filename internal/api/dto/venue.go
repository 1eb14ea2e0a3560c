package dto

type VenueResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
}

type ListVenuesResponse struct {
	Venues []VenueResponse `json:"venues"`
}
