package members

import "testing"

func TestComputeBMI(t *testing.T) {
	cases := []struct {
		heightCM, weightKG, want float64
	}{
		{180, 81, 25.0},
		{170, 65, 22.5},
		{160, 90, 35.2},
		{0, 70, 0},
		{175, 0, 0},
		{-10, 70, 0},
	}
	for _, tc := range cases {
		if got := ComputeBMI(tc.heightCM, tc.weightKG); got != tc.want {
			t.Errorf("ComputeBMI(%v, %v) = %v, want %v", tc.heightCM, tc.weightKG, got, tc.want)
		}
	}
}
