package exporting

import (
	"github.com/vfg2006/shophub-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_exporting.go -package=mocks

// Exporter define a interface para montar e serializar o payload de exportação
type Exporter interface {
	// BuildPayload monta o payload com KPIs e insights recém calculados
	BuildPayload(dataset *domain.Dataset, format string) (*domain.ExportPayload, error)

	// Export monta o payload e o serializa em JSON indentado
	Export(dataset *domain.Dataset, format string) ([]byte, error)
}
