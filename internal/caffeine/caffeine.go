// internal/caffeine/caffeine.go
package caffeine

import (
	"math"

	"health-calc/internal/models"
)

const (
	HalfLifeHours    = 5.0
	SleepThresholdMg = 50.0
	MaxSearchHours   = 200

	MaxSafeDoseMg = 400.0
	DangerDoseMg  = 1000.0
	LethalDoseMg  = 10000.0

	maxHorizonHours = 168.0
)

// QuickDosesGrams are the preset doses offered next to the amount field.
var QuickDosesGrams = []float64{0.1, 0.15, 0.2, 0.5, 1, 10}

// Remaining returns the mg left in the body after elapsedHours.
func Remaining(doseMg, elapsedHours float64) float64 {
	return doseMg * math.Pow(0.5, elapsedHours/HalfLifeHours)
}

// HoursUntilSafe returns the first whole hour at which the remaining caffeine
// is at or below the sleep threshold, capped at MaxSearchHours.
func HoursUntilSafe(doseMg float64) int {
	hours := 0
	for Remaining(doseMg, float64(hours)) > SleepThresholdMg && hours < MaxSearchHours {
		hours++
	}
	return hours
}

// Classify places a dose in its safety tier.
func Classify(doseMg float64) models.SafetyTier {
	switch {
	case doseMg >= LethalDoseMg:
		return models.TierLethal
	case doseMg >= DangerDoseMg:
		return models.TierDangerous
	case doseMg >= MaxSafeDoseMg:
		return models.TierHigh
	default:
		return models.TierSafe
	}
}

// horizon returns the chart span in hours for a given safe time.
func horizon(safeHours int) float64 {
	var h float64
	switch {
	case safeHours < 12:
		h = 12
	case safeHours < 24:
		h = float64(safeHours + 4)
	case safeHours < 48:
		h = float64(safeHours + 8)
	default:
		h = float64(safeHours + 12)
	}
	return math.Min(h, maxHorizonHours)
}

func step(horizon float64) float64 {
	switch {
	case horizon <= 24:
		return 0.5
	case horizon <= 72:
		return 1
	default:
		return 2
	}
}

// Timeline samples the decay curve from hour zero to the chart horizon.
func Timeline(doseMg float64) []models.DecayPoint {
	h := horizon(HoursUntilSafe(doseMg))
	s := step(h)
	n := int(h / s)
	points := make([]models.DecayPoint, 0, n+1)
	for i := 0; i <= n; i++ {
		hour := float64(i) * s
		points = append(points, models.DecayPoint{Hour: hour, RemainingMg: Remaining(doseMg, hour)})
	}
	return points
}
