package services

import (
	"errors"
	"fmt"
	"time"

	"meeting-point-service/internal/domain"
)

// ErrBadTimeFormat indicates a meeting time that is not strict 24-hour "HH:MM".
var ErrBadTimeFormat = errors.New(`meeting time must be 24-hour "HH:MM"`)

// DefaultBufferMinutes is added on top of travel time (parking, finding the
// table) when the caller does not specify a buffer.
const DefaultBufferMinutes = 5.0

// DepartureTimes back-computes when each participant must leave to arrive
// at meetingTime, given per-person travel minutes aligned by index.
//
// Departure and arrival are clock strings with no date: a departure that
// crosses midnight renders as a previous-day clock time and is visually
// indistinguishable from a same-day one. Participants beyond the end of
// travelMinutes are skipped without error; the caller owns the alignment.
func DepartureTimes(meetingTime string, participants []string, travelMinutes []float64, bufferMinutes float64) ([]domain.DepartureEntry, error) {
	meeting, err := time.Parse("15:04", meetingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadTimeFormat, meetingTime)
	}

	entries := make([]domain.DepartureEntry, 0, len(participants))
	for i, name := range participants {
		if i >= len(travelMinutes) {
			break
		}

		totalMin := travelMinutes[i] + bufferMinutes
		departure := meeting.Add(-time.Duration(totalMin * float64(time.Minute)))

		entries = append(entries, domain.DepartureEntry{
			Name:          name,
			TravelMinutes: travelMinutes[i],
			BufferMinutes: bufferMinutes,
			DepartureTime: departure.Format("15:04"),
			ArrivalTime:   meeting.Format("15:04"),
		})
	}

	return entries, nil
}
