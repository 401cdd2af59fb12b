// internal/caffeine/assess.go
package caffeine

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"health-calc/internal/models"
)

type Assessment struct {
	DoseMg      float64           `json:"dose_mg"`
	DoseGrams   float64           `json:"dose_grams"`
	DisplayDose string            `json:"display_dose"`
	SafeHours   int               `json:"safe_hours"`
	Tier        models.SafetyTier `json:"tier"`
	TierLabel   string            `json:"tier_label"`
	Color       string            `json:"color"`
	Warning     *models.Warning   `json:"warning,omitempty"`
	Chart       DecayChart        `json:"chart"`
}

// Assess runs the full caffeine calculation for one dose.
func Assess(in models.DoseInput) (*Assessment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: caffeine amount must be positive, got %v", models.ErrInvalidInput, in.Amount)
	}
	if in.Unit != models.Grams && in.Unit != models.Milligrams {
		return nil, fmt.Errorf("%w: unknown dose unit %q", models.ErrInvalidInput, in.Unit)
	}

	mg := in.Milligrams()
	tier := Classify(mg)
	label, color := tierDisplay(tier)
	a := &Assessment{
		DoseMg:      mg,
		DoseGrams:   mg / 1000,
		DisplayDose: FormatDose(mg),
		SafeHours:   HoursUntilSafe(mg),
		Tier:        tier,
		TierLabel:   label,
		Color:       color,
		Warning:     warningFor(tier, mg),
		Chart:       Chart(mg),
	}
	return a, nil
}

func tierDisplay(tier models.SafetyTier) (string, string) {
	switch tier {
	case models.TierLethal:
		return "LETHAL", "red"
	case models.TierDangerous:
		return "EXTREMELY DANGEROUS", "darkred"
	case models.TierHigh:
		return "HIGH DOSE", "orange"
	default:
		return "SAFE RANGE", "green"
	}
}

func warningFor(tier models.SafetyTier, mg float64) *models.Warning {
	switch tier {
	case models.TierLethal:
		return &models.Warning{
			Title:   "Lethal Dose Warning",
			Message: fmt.Sprintf("Warning: %smg is a potentially lethal dose!", humanize.FormatFloat("#,###.", mg)),
		}
	case models.TierDangerous:
		return &models.Warning{
			Title:   "Dangerous Dose",
			Message: fmt.Sprintf("Warning: %smg is extremely dangerous!", humanize.FormatFloat("#,###.", mg)),
		}
	}
	return nil
}

// FormatDose renders a dose as "0.200g (200mg)", grouping thousands on
// large values.
func FormatDose(mg float64) string {
	g := mg / 1000
	var gs, ms string
	if g >= 1 {
		gs = humanize.FormatFloat("#,###.#", g)
	} else {
		gs = fmt.Sprintf("%.3f", g)
	}
	if mg >= 1000 {
		ms = humanize.FormatFloat("#,###.", mg)
	} else {
		ms = fmt.Sprintf("%.0f", mg)
	}
	return fmt.Sprintf("%sg (%smg)", gs, ms)
}
