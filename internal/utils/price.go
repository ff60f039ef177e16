package utils

import "math"

// Round2 arrondit un montant au centime (demi-centime vers le haut).
// L'arrondi se fait une seule fois, sur la somme finale, jamais ligne par ligne.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
