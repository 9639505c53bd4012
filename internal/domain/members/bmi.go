package members

import "math"

// ComputeBMI returns weight / height² rounded to one decimal, or 0 for
// non-positive inputs.
func ComputeBMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}
	m := heightCM / 100.0
	return math.Round(weightKG/(m*m)*10) / 10
}
