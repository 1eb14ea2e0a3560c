package services

import (
	"testing"

	"meeting-point-service/internal/domain"
)

func TestRecommendTransportModesShortTrip(t *testing.T) {
	bike := 15.0
	opts := RecommendTransportModes(2.5, 12, 18, &bike)

	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0].Mode != domain.ModeBicycling || opts[0].Priority != 1 {
		t.Errorf("first option = %+v, want bicycling priority 1", opts[0])
	}
	if opts[1].Mode != domain.ModeTransit || opts[1].Priority != 2 {
		t.Errorf("second option = %+v, want transit priority 2", opts[1])
	}
	if opts[2].Mode != domain.ModeDriving || opts[2].Priority != 3 {
		t.Errorf("third option = %+v, want driving priority 3", opts[2])
	}
}

func TestRecommendTransportModesShortTripNoBicycling(t *testing.T) {
	// no bicycling duration supplied: the mode must not appear even
	// within the short bracket
	opts := RecommendTransportModes(2.5, 12, 18, nil)

	for _, o := range opts {
		if o.Mode == domain.ModeBicycling {
			t.Fatalf("bicycling recommended without a duration: %+v", o)
		}
	}
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
}

func TestRecommendTransportModesMidTrip(t *testing.T) {
	// bicycling is out of scope above 3 km even when fast
	bike := 10.0
	opts := RecommendTransportModes(7, 25, 40, &bike)

	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Mode != domain.ModeDriving || opts[0].Priority != 1 {
		t.Errorf("first option = %+v, want driving priority 1", opts[0])
	}
	if opts[1].Mode != domain.ModeTransit || opts[1].Priority != 2 {
		t.Errorf("second option = %+v, want transit priority 2", opts[1])
	}
}

func TestRecommendTransportModesLongTrip(t *testing.T) {
	opts := RecommendTransportModes(25, 45, 90, nil)

	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Mode != domain.ModeDriving {
		t.Errorf("first option = %+v, want driving", opts[0])
	}
	if opts[1].Mode != domain.ModeTransit {
		t.Errorf("second option = %+v, want transit", opts[1])
	}
}

func TestRecommendTransportModesThresholdsExclusive(t *testing.T) {
	// durations exactly at a threshold do not qualify
	bike := 30.0
	opts := RecommendTransportModes(2, 20, 30, &bike)

	if len(opts) != 1 || opts[0].Mode != domain.ModeNone {
		t.Fatalf("expected sentinel only, got %+v", opts)
	}
}

func TestRecommendTransportModesSentinel(t *testing.T) {
	opts := RecommendTransportModes(25, 120, 300, nil)

	if len(opts) != 1 {
		t.Fatalf("expected single sentinel option, got %d", len(opts))
	}
	s := opts[0]
	if s.Mode != domain.ModeNone || s.Minutes != 999 || s.Priority != 0 {
		t.Errorf("sentinel = %+v, want {none 999 0}", s)
	}
}
