// internal/caffeine/chart.go
package caffeine

import (
	"fmt"

	"health-calc/internal/models"
)

// DecayChart is everything a renderer needs to draw the decay timeline.
type DecayChart struct {
	Title          string              `json:"title"`
	XLabel         string              `json:"x_label"`
	YLabel         string              `json:"y_label"`
	SeriesLabel    string              `json:"series_label"`
	Series         []models.DecayPoint `json:"series"`
	ThresholdMg    float64             `json:"threshold_mg"`
	ThresholdLabel string              `json:"threshold_label"`
	SafeHour       *float64            `json:"safe_hour,omitempty"`
	SafeLabel      string              `json:"safe_label,omitempty"`
	XMax           float64             `json:"x_max"`
	YMax           float64             `json:"y_max"`
	XTickInterval  float64             `json:"x_tick_interval"`
	PlainYAxis     bool                `json:"plain_y_axis"`
}

func Chart(doseMg float64) DecayChart {
	safe := HoursUntilSafe(doseMg)
	h := horizon(safe)

	c := DecayChart{
		Title:          fmt.Sprintf("Caffeine Decay: %.3fg → %.1fh affect", doseMg/1000, float64(safe)),
		XLabel:         "Hours after consumption",
		YLabel:         "Caffeine (mg)",
		SeriesLabel:    "Caffeine in body",
		Series:         Timeline(doseMg),
		ThresholdMg:    SleepThresholdMg,
		ThresholdLabel: fmt.Sprintf("Sleep threshold (%.0fmg)", SleepThresholdMg),
		XMax:           h,
		YMax:           doseMg * 1.05,
		XTickInterval:  tickInterval(h),
		PlainYAxis:     doseMg > 1000,
	}
	if float64(safe) <= h {
		sh := float64(safe)
		c.SafeHour = &sh
		c.SafeLabel = fmt.Sprintf("Safe to sleep (%.1fh)", sh)
	}
	return c
}

func tickInterval(horizon float64) float64 {
	switch {
	case horizon <= 24:
		return 2
	case horizon <= 72:
		return 6
	default:
		return 24
	}
}
