package reporting

import (
	"io"

	"github.com/vfg2006/shophub-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_reporting.go -package=mocks

// Analytics define as operações do pipeline expostas para a API e o agendador
type Analytics interface {
	Run(w io.Writer, format string) (*domain.RunSummary, error)
	Refresh() (*domain.Snapshot, error)
	Current() (*domain.Snapshot, error)
	KPIs() (*domain.KPISet, error)
	Insights() ([]string, error)
	Export(format string) ([]byte, error)
}
