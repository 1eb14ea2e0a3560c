package services

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyzeTravelTimes(t *testing.T) {
	stats, err := AnalyzeTravelTimes([]float64{19.5, 6.2, 17.4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(stats.MeanMinutes-14.3666666) > 1e-4 {
		t.Errorf("mean = %v, want ~14.3667", stats.MeanMinutes)
	}

	// population variance: ((19.5-m)^2 + (6.2-m)^2 + (17.4-m)^2) / 3
	if math.Abs(stats.Variance-34.0822222) > 1e-4 {
		t.Errorf("variance = %v, want ~34.0822", stats.Variance)
	}

	if math.Abs(stats.MaxSpreadMinutes-13.3) > 1e-9 {
		t.Errorf("max spread = %v, want 13.3", stats.MaxSpreadMinutes)
	}
}

func TestAnalyzeTravelTimesConstant(t *testing.T) {
	stats, err := AnalyzeTravelTimes([]float64{20, 20, 20, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Variance != 0 {
		t.Errorf("variance of constant series = %v, want 0", stats.Variance)
	}
	if stats.MaxSpreadMinutes != 0 {
		t.Errorf("spread of constant series = %v, want 0", stats.MaxSpreadMinutes)
	}
	if stats.MeanMinutes != 20 {
		t.Errorf("mean = %v, want 20", stats.MeanMinutes)
	}
}

func TestAnalyzeTravelTimesEmpty(t *testing.T) {
	_, err := AnalyzeTravelTimes(nil)
	if !errors.Is(err, ErrNoTravelTimes) {
		t.Fatalf("expected ErrNoTravelTimes, got %v", err)
	}
}

func TestRateDispersionTiers(t *testing.T) {
	cases := []struct {
		variance  float64
		wantScore int
		wantLevel string
	}{
		{0, 5, "excellent"},
		{49.99, 5, "excellent"},
		{50, 4, "good"},
		{99.99, 4, "good"},
		{100, 3, "fair"},
		{199.99, 3, "fair"},
		{200, 2, "poor"},
		{1000, 2, "poor"},
	}

	for _, c := range cases {
		got := RateDispersion(c.variance)
		if got.Score != c.wantScore {
			t.Errorf("variance %v: score = %d, want %d", c.variance, got.Score, c.wantScore)
		}
		if got.Level != c.wantLevel {
			t.Errorf("variance %v: level = %q, want %q", c.variance, got.Level, c.wantLevel)
		}
		if got.Advice == "" {
			t.Errorf("variance %v: advice is empty", c.variance)
		}
	}
}
