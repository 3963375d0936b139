// internal/domain/symptom/risk.go
package symptom

// Tier is the coarse risk level derived from how many symptoms were selected.
type Tier string

const (
	TierNone     Tier = "none"
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// Classify maps a selected-symptom count to a tier: 0 none, 1-3 low,
// 4-6 moderate, 7 and above high.
func Classify(count int) Tier {
	switch {
	case count <= 0:
		return TierNone
	case count <= 3:
		return TierLow
	case count <= 6:
		return TierModerate
	default:
		return TierHigh
	}
}

// Message is the fixed advice shown for the tier.
func (t Tier) Message() string {
	switch t {
	case TierLow:
		return "Low Risk"
	case TierModerate:
		return "Moderate Risk - Consider medical advice."
	case TierHigh:
		return "High Risk - Please consult a doctor immediately."
	default:
		return "No significant symptoms detected."
	}
}
