package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{21.6, 21.6},
		{21.599999999999998, 21.6},
		{30.001, 30.0},
		{12.344, 12.34},
		{12.346, 12.35},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
