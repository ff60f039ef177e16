package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"somme panier type", 49.99*1 + 69.99*2, 189.97},
		{"déjà au centime", 42.50, 42.50},
		{"demi-centime arrondi au-dessus", 10.005, 10.01},
		{"troncature simple", 3.14159, 3.14},
		{"zéro", 0, 0},
		{"résidu flottant", 0.1 + 0.2, 0.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Round2(tc.in), 1e-9)
		})
	}
}
