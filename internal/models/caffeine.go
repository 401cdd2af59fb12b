// internal/models/caffeine.go
package models

type DoseUnit string

const (
	Grams      DoseUnit = "grams"
	Milligrams DoseUnit = "milligrams"
)

type DoseInput struct {
	Amount float64  `json:"amount"`
	Unit   DoseUnit `json:"unit"`
}

// Milligrams normalizes the dose.
func (d DoseInput) Milligrams() float64 {
	if d.Unit == Grams {
		return d.Amount * 1000
	}
	return d.Amount
}

type SafetyTier string

const (
	TierSafe      SafetyTier = "SAFE"
	TierHigh      SafetyTier = "HIGH"
	TierDangerous SafetyTier = "DANGEROUS"
	TierLethal    SafetyTier = "LETHAL"
)

// Warning is raised alongside a classification the caller has to surface.
type Warning struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type DecayPoint struct {
	Hour        float64 `json:"hour"`
	RemainingMg float64 `json:"remaining_mg"`
}
