package calculating

import (
	"errors"
	"fmt"
)

// Erros específicos para o cálculo de KPIs
var (
	ErrInsufficientData = errors.New("at least two monthly records are required")
	ErrZeroDenominator  = errors.New("growth denominator is zero")
)

// CalculationError é um erro aritmético com o indicador envolvido
type CalculationError struct {
	Err    error  // Erro base
	Metric string // Nome do indicador que falhou
	Month  string // Mês usado como denominador (quando aplicável)
}

// Error implementa a interface error
func (e *CalculationError) Error() string {
	if e.Month != "" {
		return fmt.Sprintf("%s: %s (month %s)", e.Metric, e.Err.Error(), e.Month)
	}
	return fmt.Sprintf("%s: %s", e.Metric, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculationError cria um novo CalculationError
func NewCalculationError(err error, metric string, month string) *CalculationError {
	return &CalculationError{
		Err:    err,
		Metric: metric,
		Month:  month,
	}
}
