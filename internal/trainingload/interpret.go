package trainingload

// InterpretForm maps a form (TSB) value to a qualitative description.
// Brackets are half-open on the upper side: a form of exactly 25 reads
// as "optimal race readiness", not "losing fitness".
func InterpretForm(form float64) string {
	switch {
	case form > 25:
		return "Highly rested - may be losing fitness"
	case form > 15:
		return "Well rested - optimal race readiness"
	case form > 5:
		return "Rested - good for racing"
	case form > -10:
		return "Fresh - productive training zone"
	case form > -30:
		return "Optimal training - building fitness"
	case form > -50:
		return "Heavy training - monitor for overtraining"
	default:
		return "Very fatigued - risk of overtraining"
	}
}
