package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// MinorToMajor converte centavos (unidades mínimas) para a unidade da moeda,
// arredondando em duas casas
func MinorToMajor(minor float64) float64 {
	return RoundWithTwoDecimalPlace(minor / 100)
}
