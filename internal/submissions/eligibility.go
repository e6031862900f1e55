package submissions

// Eligibility levels, from the ratio of requested limit to monthly revenue.
const (
	LevelCompatible     = "compatible"
	LevelModerate       = "moderate"
	LevelExceedsRevenue = "exceeds_revenue"
)

// Eligibility is advisory text shown next to the request. It never blocks a submission.
type Eligibility struct {
	Level   string  `json:"level"`
	Ratio   float64 `json:"ratio"`
	Message string  `json:"message"`
}

// AssessEligibility classifies limit/revenue. It reports false when either value is not positive.
func AssessEligibility(limit, revenue float64) (Eligibility, bool) {
	if limit <= 0 || revenue <= 0 {
		return Eligibility{}, false
	}
	ratio := limit / revenue
	switch {
	case ratio <= 0.3:
		return Eligibility{Level: LevelCompatible, Ratio: ratio, Message: "Perfil compatível com análise inicial."}, true
	case ratio <= 1.0:
		return Eligibility{Level: LevelModerate, Ratio: ratio, Message: "Solicitação moderada, pode exigir comprovação adicional."}, true
	default:
		return Eligibility{Level: LevelExceedsRevenue, Ratio: ratio, Message: "Limite muito acima do faturamento, provável redução após análise."}, true
	}
}
