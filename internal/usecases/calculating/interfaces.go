package calculating

import (
	"github.com/vfg2006/shophub-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_calculating.go -package=mocks

// Calculator define a interface para derivar os KPIs de um dataset
type Calculator interface {
	// Calculate reduz a série mensal em indicadores formatados
	Calculate(dataset *domain.Dataset) (*domain.KPISet, error)
}
