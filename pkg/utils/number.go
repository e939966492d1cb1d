package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda para o inteiro mais próximo, afastando de zero nos empates
func RoundToInt(f float64) int {
	return int(math.Round(f))
}

// PercentChange calcula a variação percentual de previous para current.
// O chamador deve garantir previous != 0.
func PercentChange(current, previous float64) float64 {
	return (current - previous) / previous * 100
}
