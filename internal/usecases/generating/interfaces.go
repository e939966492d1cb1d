package generating

import (
	"github.com/vfg2006/shophub-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_generating.go -package=mocks

// Generator define a interface para gerar o dataset sintético
type Generator interface {
	// Generate produz um novo dataset completo
	Generate() *domain.Dataset
}
