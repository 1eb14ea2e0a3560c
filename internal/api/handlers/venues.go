package handlers

import (
	"log"
	"net/http"

	"meeting-point-service/internal/api/dto"
	"meeting-point-service/internal/ports"
)

// VenueHandler exposes read-only venue catalog endpoints.
type VenueHandler struct {
	Repo ports.VenueRepository
}

func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	venues, err := h.Repo.ListVenues(r.Context())
	if err != nil {
		log.Printf("list venues failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVenuesResponse{
		Venues: make([]dto.VenueResponse, 0, len(venues)),
	}
	for _, v := range venues {
		res.Venues = append(res.Venues, dto.VenueResponse{
			ID:          v.ID,
			Name:        v.Name,
			Rating:      v.Rating,
			ReviewCount: v.ReviewCount,
			Lon:         v.Location.Lon,
			Lat:         v.Location.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
