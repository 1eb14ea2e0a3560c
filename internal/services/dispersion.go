package services

import "errors"

// ErrNoTravelTimes indicates a dispersion request over an empty sample set.
var ErrNoTravelTimes = errors.New("dispersion: travel time list must not be empty")

// Descriptive statistics over a set of per-person travel times.
type TravelTimeStats struct {
	MeanMinutes      float64
	Variance         float64 // minutes squared
	MaxSpreadMinutes float64
}

// Qualitative score for how well a group's travel times align.
type DispersionRating struct {
	Score  int // 1-5, 5 best
	Level  string
	Advice string
}

// Variance thresholds for the rating tiers. These are behavioral contracts;
// changing them changes which meeting points the service endorses.
const (
	varianceExcellent = 50
	varianceGood      = 100
	varianceFair      = 200
)

// AnalyzeTravelTimes returns mean, population variance and max spread for
// the given travel times in minutes.
//
// Population variance (divide by N, not N-1) is intentional: the samples
// are the whole group, not a draw from a larger one.
func AnalyzeTravelTimes(minutes []float64) (TravelTimeStats, error) {
	if len(minutes) == 0 {
		return TravelTimeStats{}, ErrNoTravelTimes
	}

	var sum float64
	min, max := minutes[0], minutes[0]
	for _, m := range minutes {
		sum += m
		if m < min {
			min = m
		}
		if m > max {
			max = m
		}
	}
	mean := sum / float64(len(minutes))

	var sq float64
	for _, m := range minutes {
		d := m - mean
		sq += d * d
	}

	return TravelTimeStats{
		MeanMinutes:      mean,
		Variance:         sq / float64(len(minutes)),
		MaxSpreadMinutes: max - min,
	}, nil
}

// RateDispersion maps a travel-time variance onto a 1-5 fairness rating.
func RateDispersion(variance float64) DispersionRating {
	switch {
	case variance < varianceExcellent:
		return DispersionRating{
			Score:  5,
			Level:  "excellent",
			Advice: "travel times align almost perfectly; strongly recommended",
		}
	case variance < varianceGood:
		return DispersionRating{
			Score:  4,
			Level:  "good",
			Advice: "travel times align well; acceptable for everyone",
		}
	case variance < varianceFair:
		return DispersionRating{
			Score:  3,
			Level:  "fair",
			Advice: "travel times differ noticeably but remain workable",
		}
	default:
		return DispersionRating{
			Score:  2,
			Level:  "poor",
			Advice: "travel times differ too much; consider another location",
		}
	}
}
