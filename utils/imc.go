package utils

import (
	"errors"
	"math"
)

// CalculateIMC expects estatura in centimeters and peso in kilograms and
// returns the BMI rounded to 1 decimal.
func CalculateIMC(pesoKg, estaturaCm float64) (float64, error) {
	if pesoKg <= 0 || estaturaCm <= 0 {
		return 0, errors.New("peso y estatura deben ser positivos")
	}
	// Sanity checks to avoid garbage input
	if estaturaCm < 50 || estaturaCm > 250 || pesoKg < 10 || pesoKg > 400 {
		return 0, errors.New("peso/estatura fuera de rango plausible")
	}

	h := estaturaCm / 100.0 // to meters
	imc := pesoKg / (h * h)
	return math.Round(imc*10) / 10, nil
}

func CategoriaIMC(imc float64) string {
	switch {
	case imc < 18.5:
		return "Bajo peso"
	case imc < 25.0:
		return "Peso normal"
	case imc < 30.0:
		return "Sobrepeso"
	case imc < 35.0:
		return "Obesidad grado I"
	case imc < 40.0:
		return "Obesidad grado II"
	default:
		return "Obesidad grado III"
	}
}
