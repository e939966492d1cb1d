package exporting

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/internal/usecases/calculating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/insighting"
	"github.com/vfg2006/shophub-analytics/pkg/utils"
)

// Service monta o payload de exportação para ferramentas de BI
type Service struct {
	calculator calculating.Calculator
	selector   insighting.Selector
	now        func() time.Time
}

// NewService cria uma nova instância do exportador.
// Se now for nil, time.Now é usado.
func NewService(calculator calculating.Calculator, selector insighting.Selector, now func() time.Time) Exporter {
	if now == nil {
		now = time.Now
	}

	return &Service{
		calculator: calculator,
		selector:   selector,
		now:        now,
	}
}

// BuildPayload monta o payload a partir do dataset informado.
// O formato é apenas ecoado no payload.
func (s *Service) BuildPayload(dataset *domain.Dataset, format string) (*domain.ExportPayload, error) {
	if dataset == nil {
		return nil, errors.New("dataset não informado")
	}

	if format == "" {
		format = domain.DefaultExportFormat
	}

	kpis, err := s.calculator.Calculate(dataset)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular KPIs para exportação")
	}

	insights, err := s.selector.GenerateInsights()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao sortear insights para exportação")
	}

	// Cópia estrutural: as tendências exportadas são as mesmas usadas nos KPIs
	tables := dataset.Clone()

	return &domain.ExportPayload{
		KPIs:                kpis,
		SalesTrends:         tables.SalesData,
		CategoryPerformance: tables.Categories,
		CustomerAnalytics:   tables.CustomerSegments,
		BusinessInsights:    insights,
		ExportTimestamp:     utils.FormatISO8601(s.now()),
		Format:              format,
	}, nil
}

// Export serializa o payload. Todo rótulo de formato produz o mesmo documento JSON.
func (s *Service) Export(dataset *domain.Dataset, format string) ([]byte, error) {
	payload, err := s.BuildPayload(dataset, format)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(payload.Format, domain.DefaultExportFormat) {
		logrus.WithField("format", payload.Format).Warn("Formato de exportação não suportado, exportando como JSON")
	}

	data, err := utils.PrettyJSON(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar payload de exportação")
	}

	logrus.WithFields(logrus.Fields{
		"format": payload.Format,
		"bytes":  len(data),
	}).Debug("Payload de exportação gerado")

	return data, nil
}
