package trainingload

import "testing"

func TestInterpretForm(t *testing.T) {
	tests := []struct {
		form float64
		want string
	}{
		{30, "Highly rested - may be losing fitness"},
		{25.1, "Highly rested - may be losing fitness"},
		{25, "Well rested - optimal race readiness"},
		{20, "Well rested - optimal race readiness"},
		{15, "Rested - good for racing"},
		{10, "Rested - good for racing"},
		{5, "Fresh - productive training zone"},
		{0, "Fresh - productive training zone"},
		{-10, "Optimal training - building fitness"},
		{-20, "Optimal training - building fitness"},
		{-30, "Heavy training - monitor for overtraining"},
		{-45, "Heavy training - monitor for overtraining"},
		{-50, "Very fatigued - risk of overtraining"},
		{-80, "Very fatigued - risk of overtraining"},
	}

	for _, tt := range tests {
		if got := InterpretForm(tt.form); got != tt.want {
			t.Errorf("InterpretForm(%v) = %q, want %q", tt.form, got, tt.want)
		}
	}
}
